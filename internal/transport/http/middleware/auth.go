package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/service"
	"github.com/pribylovaa/go-messenger/internal/transport/http/httperr"
)

type ctxKey int

// CtxUserID — ключ контекста с ID аутентифицированного пользователя.
const CtxUserID ctxKey = iota

// TokenAuthenticator проверяет access-токен и возвращает ID пользователя.
type TokenAuthenticator interface {
	AuthenticateAccess(accessToken string) (uuid.UUID, error)
}

// Auth извлекает access-токен (cookie или Authorization: Bearer),
// проверяет его и кладёт ID пользователя в контекст по ключу CtxUserID.
// Запрос без валидного токена обрывается с 401 до хендлера.
func Auth(auth TokenAuthenticator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r, cookieName)
			if token == "" {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			userID, err := auth.AuthenticateAccess(token)
			if err != nil {
				httperr.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFrom достаёт ID пользователя, положенный Auth.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(CtxUserID).(uuid.UUID)
	return id, ok
}

// tokenFromRequest предпочитает session-cookie; Authorization: Bearer —
// запасной вариант для не-браузерных клиентов.
func tokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}

	return ""
}
