package middleware

import (
	"crypto/subtle"
	"net/http"

	"fireDispatch/internal/api/response"
)

const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware guards administrative routes with a shared key.
func APIKeyMiddleware(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(APIKeyHeader)
			if got == "" {
				response.Fail(w, http.StatusUnauthorized, "missing API key")
				return
			}
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				response.Fail(w, http.StatusForbidden, "invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
