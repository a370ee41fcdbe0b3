package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/davidbz/shreegen/internal/observability"
)

// AdminAuth rejects requests whose bearer token does not match. An empty
// token rejects everything.
func AdminAuth(token string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				observability.FromContext(r.Context()).Warn("admin request rejected",
					observability.String("path", r.URL.Path))
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
