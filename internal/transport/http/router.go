// http собирает REST-роутер сервиса: публичные auth-маршруты,
// защищённые cookie-маршруты и стриминговые подписки.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-messenger/internal/config"
	"github.com/pribylovaa/go-messenger/internal/service"
	"github.com/pribylovaa/go-messenger/internal/transport/http/handlers"
	"github.com/pribylovaa/go-messenger/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, cfg config.AuthConfig, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики/гистограммы по маршрутам
	)

	h := handlers.New(svc, cfg)
	authed := middleware.Auth(svc, cfg.CookieName)

	// Публичные маршруты.
	root.Group(func(r chi.Router) {
		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout))
		}

		r.Post("/auth/register", h.RegisterUser)
		r.Post("/auth/login", h.LoginUser)
		r.Post("/auth/refresh", h.RefreshSession) // аутентификация по refresh-cookie внутри
		r.Post("/auth/2fa/validate", h.Validate2FA)
		r.Post("/auth/logout", h.Logout)
		r.Post("/user/forgot-password", h.ForgotPassword)
		r.Post("/user/reset-password", h.ResetPassword)
	})

	// Маршруты под access-cookie.
	root.Group(func(r chi.Router) {
		r.Use(authed)
		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout))
		}

		r.Post("/auth/2fa", h.Enable2FA)

		r.Get("/user", h.Me)
		r.Put("/user", h.UpdateProfile)
		r.Delete("/user", h.DeleteMe)
		r.Put("/user/reset-password", h.ChangePassword)
		r.Get("/users", h.SearchUsers)

		r.Post("/chat", h.CreateChat)
		r.Get("/chat", h.ListChats)
		r.Get("/chat/{chat_id}", h.ChatByID)
		r.Put("/chat/{chat_id}", h.UpdateChat)
		r.Delete("/chat/{chat_id}", h.DeleteChat)
		r.Post("/chat/{chat_id}/invite", h.InviteToChat)

		r.Post("/chat/{chat_id}/message", h.CreateMessage)
		r.Get("/chat/{chat_id}/message", h.ListMessages)
		r.Get("/chat/{chat_id}/message/{message_id}", h.MessageByID)
		r.Put("/chat/{chat_id}/message/{message_id}", h.UpdateMessage)
		r.Delete("/chat/{chat_id}/message/{message_id}", h.DeleteMessage)
	})

	// Стриминговые подписки: без общего Timeout, соединение живёт
	// до обрыва клиентом или отключения шиной.
	root.Group(func(r chi.Router) {
		r.Use(authed)

		r.Get("/chat/{chat_id}/stream", h.StreamChat)
		r.Get("/chat/{chat_id}/ws", h.WSChat)
	})

	return root
}
