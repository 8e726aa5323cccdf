package auth

import (
	"errors"
	"testing"
	"time"

	"jobboard-api/internal/domain"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)

	tok, err := issuer.Issue("user-123", domain.UserTypeEmployer)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.UserType != domain.UserTypeEmployer {
		t.Fatalf("userType mismatch: got %q", claims.UserType)
	}
}

func TestIssue_ExpiryIsIssuedAtPlusTTL(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("secret"), time.Hour)

	tok, err := issuer.Issue("u1", domain.UserTypeJobseeker)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if got != time.Hour {
		t.Fatalf("expiry window: got %v want %v", got, time.Hour)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("secret"), -1*time.Second)

	tok, err := issuer.Issue("u1", domain.UserTypeEmployer)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := issuer.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer([]byte("right-secret"), time.Hour).Issue("u2", domain.UserTypeEmployer)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewTokenIssuer([]byte("wrong-secret"), time.Hour).Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenIssuer([]byte("k"), time.Hour).Parse("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestExtractBearer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "no prefix", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "prefix only", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearer(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrMissingToken) {
					t.Fatalf("expected ErrMissingToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearer error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("token mismatch: got %q want %q", got, tt.want)
			}
		})
	}
}
