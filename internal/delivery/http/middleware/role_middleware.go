package middleware

import (
	"net/http"

	"doctor-matching/internal/domain/entity"
	"doctor-matching/pkg/response"
)

// RequireUserType creates a middleware that checks the user type discriminator
// read from context (set by AuthMiddleware from JWT claims)
func RequireUserType(allowedUserTypeIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userTypeID, ok := GetUserTypeIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User type information not found")
				return
			}

			allowed := false
			for _, allowedID := range allowedUserTypeIDs {
				if userTypeID == allowedID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeIDDoctor)(next)
}
