package middleware

import (
	"crypto/subtle"
	"net/http"

	"doctor-matching/pkg/response"
)

const APIKeyHeader = "X-API-Key"

type APIKeyMiddleware struct {
	apiKey []byte
}

// NewAPIKeyMiddleware guards routes with a shared key. An empty key disables the check.
func NewAPIKeyMiddleware(apiKey string) *APIKeyMiddleware {
	return &APIKeyMiddleware{apiKey: []byte(apiKey)}
}

func (m *APIKeyMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(m.apiKey) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		provided := []byte(r.Header.Get(APIKeyHeader))
		if subtle.ConstantTimeCompare(provided, m.apiKey) != 1 {
			response.Unauthorized(w, "Invalid or missing API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
