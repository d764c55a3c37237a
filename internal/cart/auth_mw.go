package cart

import (
	"context"
	"net/http"
	"strings"

	"kalaverse/internal/auth"
	"kalaverse/pkg/kit"
)

type ctxKey string

const userKey ctxKey = "user"

type User struct {
	ID   string
	Role string
}

func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}

// AuthJWT is the cart's authentication signal. A request without a valid
// token is rejected with the same destructive notice the storefront shows
// for an unauthenticated add-to-cart.
func AuthJWT(jwt *auth.TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				writeRejected(w, r)
				return
			}

			claims, err := jwt.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil || claims.UserID == "" {
				writeRejected(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, User{ID: claims.UserID, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeRejected(w http.ResponseWriter, r *http.Request) {
	notice, _ := Event{Kind: EventRejected}.Notice()
	kit.WriteError(w, r, http.StatusUnauthorized, "authentication required", map[string]any{
		"notice": notice,
	})
}
