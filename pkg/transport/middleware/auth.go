package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/unidict-shared/pkg/ctxutil"
	"github.com/heartmarshall/unidict-shared/pkg/transport/rest"
	"github.com/heartmarshall/unidict-shared/pkg/types"
)

// TokenValidator resolves an access token to the user it was issued for.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (userID string, role types.UserRole, err error)
}

// Auth resolves the bearer token, if any, and stores the user id and role in
// the request context. Requests without a token pass through anonymously;
// an invalid token is rejected with UNAUTHORIZED.
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := rest.BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil || userID == "" {
				rest.WriteError(w, r, types.NewAPIError(types.ErrCodeUnauthorized, "invalid token"))
				return
			}
			noteUser(r.Context(), userID)
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithUserRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous requests with UNAUTHORIZED.
func RequireUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				rest.WriteError(w, r, types.NewAPIError(types.ErrCodeUnauthorized, "authentication required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin returns types.ErrForbidden if the context user is not admin.
// Use in handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return types.ErrForbidden
	}
	return nil
}
