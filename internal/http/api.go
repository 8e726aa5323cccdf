package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/service"
)

const claimsContextKey = "authClaims"

// Handler wires HTTP routes to the auth service and token codec.
type Handler struct {
	auth   service.AuthService
	tokens *auth.TokenIssuer
	logger *logrus.Logger
}

func NewHandler(authSvc service.AuthService, tokens *auth.TokenIssuer, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:   authSvc,
		tokens: tokens,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/api/jobs", h.jobs)
	router.POST("/signup", h.signup)
	router.POST("/login", h.login)
	router.GET("/dashboard", h.requireAuth(), h.dashboard)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requireAuth extracts and verifies the bearer token and stores the decoded
// claims in the request context for the handler.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearer(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		claims, err := h.tokens.Parse(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

func (h *Handler) jobs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Jobs API works!"})
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.auth.Signup(c.Request.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	// the token itself stays out of the logs
	h.logger.WithField("email", req.Email).Info("user logged in")

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *Handler) dashboard(c *gin.Context) {
	value, ok := c.Get(claimsContextKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
		return
	}
	claims := value.(*auth.Claims)

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to your dashboard",
		"user": gin.H{
			"userId":    claims.UserID,
			"userType":  claims.UserType,
			"issuedAt":  claims.IssuedAt.Format(time.RFC3339),
			"expiresAt": claims.ExpiresAt.Format(time.RFC3339),
		},
	})
}

// writeError translates service errors into HTTP responses. Unexpected
// failures get a generic message so store and hasher detail never leaks.
func (h *Handler) writeError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserTypeMismatch):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
