package domain

import "time"

// UserType categorizes an account. Only the two roles below are accepted.
type UserType string

const (
	UserTypeEmployer  UserType = "employer"
	UserTypeJobseeker UserType = "jobseeker"
)

// Valid reports whether the type is one of the known roles.
func (t UserType) Valid() bool {
	return t == UserTypeEmployer || t == UserTypeJobseeker
}

// User represents a registered account of the system.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	UserType     UserType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
