package auth

import (
	"context"
	"net/http"
	"strconv"

	"marketplace/internal/entities"
)

type contextKey struct{}

var actorKey contextKey

// Middleware извлекает личность вызывающего из заголовков X-User-Id и
// X-User-Role (их проставляет API-шлюз после проверки токена) и кладет
// entities.Actor в контекст запроса.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(r.Header.Get("X-User-Id"), 10, 64)
			if err != nil || id <= 0 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			role := entities.RoleType(r.Header.Get("X-User-Role"))
			if !role.IsValid() {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actor := entities.Actor{
				ID:   id,
				Role: role,
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext возвращает актора, положенного Middleware.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}
