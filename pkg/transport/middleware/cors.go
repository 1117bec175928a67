package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/unidict-shared/pkg/types"
)

// CORSOptions configures CORS. Empty Methods means every HTTPMethod.
// An origin of "*" matches any origin; the request origin is echoed back
// so that credentials keep working.
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []types.HTTPMethod
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// Preflight requests (OPTIONS with Access-Control-Request-Method) are
// answered with 204 and never reach next.
func CORS(opts CORSOptions) Middleware {
	methods := opts.AllowedMethods
	if len(methods) == 0 {
		methods = types.HTTPMethodValues()
	}
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	allowMethods := strings.Join(names, ",")
	allowHeaders := strings.Join(opts.AllowedHeaders, ",")
	maxAge := strconv.Itoa(int(opts.MaxAge / time.Second))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && isAllowedOrigin(origin, opts.AllowedOrigins)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				if opts.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					h.Set("Access-Control-Allow-Methods", allowMethods)
					if allowHeaders != "" {
						h.Set("Access-Control-Allow-Headers", allowHeaders)
					}
					if opts.MaxAge > 0 {
						h.Set("Access-Control-Max-Age", maxAge)
					}
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isAllowedOrigin(origin string, allowed []string) bool {
	return slices.ContainsFunc(allowed, func(a string) bool {
		a = strings.TrimSpace(a)
		return a == "*" || strings.EqualFold(a, origin)
	})
}
