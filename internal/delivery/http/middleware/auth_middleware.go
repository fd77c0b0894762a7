package middleware

import (
	"context"
	"net/http"
	"strings"

	"doctor-matching/internal/domain/repository"
	"doctor-matching/pkg/jwt"
	"doctor-matching/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	DoctorIDKey    contextKey = "doctor_id"
	DoctorEmailKey contextKey = "doctor_email"
	UserTypeIDKey  contextKey = "user_type_id"
	TokenIDKey     contextKey = "token_id"
)

type AuthMiddleware struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	tokenRepo  repository.TokenRepository
}

func NewAuthMiddleware(log *logrus.Logger, jwtService *jwt.JWTService, tokenRepo repository.TokenRepository) *AuthMiddleware {
	return &AuthMiddleware{
		log:        log,
		jwtService: jwtService,
		tokenRepo:  tokenRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// revoked tokens are gone from the store
		exists, err := m.tokenRepo.AccessExists(r.Context(), claims.DoctorID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to check access token: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), DoctorIDKey, claims.DoctorID)
		ctx = context.WithValue(ctx, DoctorEmailKey, claims.Email)
		ctx = context.WithValue(ctx, UserTypeIDKey, claims.UserTypeID)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetDoctorIDFromContext extracts doctor ID from context
func GetDoctorIDFromContext(ctx context.Context) (int64, bool) {
	doctorID, ok := ctx.Value(DoctorIDKey).(int64)
	return doctorID, ok
}

// GetDoctorEmailFromContext extracts doctor email from context
func GetDoctorEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(DoctorEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetUserTypeIDFromContext extracts user type ID from context
func GetUserTypeIDFromContext(ctx context.Context) (int, bool) {
	userTypeID, ok := ctx.Value(UserTypeIDKey).(int)
	return userTypeID, ok
}
