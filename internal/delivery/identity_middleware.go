package delivery

import (
	"context"
	"net/http"
	"strings"

	"github.com/brainsync/catalog/internal/models"
	"github.com/brainsync/catalog/internal/ports"
)

type identityKey struct{}

// IdentityMiddleware кладёт личность из токена в контекст.
// Запросы без валидного токена проходят анонимно: каталог никого не отсекает,
// роли для него совещательные.
func IdentityMiddleware(ids ports.IdentityProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			token := r.Header.Get("X-Auth")
			if token == "" {
				if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
					token = strings.TrimPrefix(h, "Bearer ")
				}
			}

			if token != "" {
				if identity, err := ids.Verify(r.Context(), token); err == nil {
					ctx := context.WithValue(r.Context(), identityKey{}, identity)
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func IdentityFromContext(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(identityKey{}).(*models.Identity)
	return identity
}
