// handlers — REST-хендлеры поверх сервисного слоя. Тела запросов/ответов
// используют camelCase; токены живут в httponly-cookies.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/config"
	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/service"
	"github.com/pribylovaa/go-messenger/internal/transport/http/httperr"
	"github.com/pribylovaa/go-messenger/internal/transport/http/middleware"
)

// Handlers агрегирует зависимости REST-слоя.
type Handlers struct {
	svc      *service.Service
	cfg      config.AuthConfig
	validate *validator.Validate
}

func New(svc *service.Service, cfg config.AuthConfig) *Handlers {
	return &Handlers{
		svc:      svc,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeValid — строгий JSON-декодер (неизвестные поля запрещены)
// с валидацией структуры через validator-теги.
func (h *Handlers) decodeValid(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return httperr.ErrBadRequest
	}

	if err := h.validate.Struct(value); err != nil {
		return httperr.ErrBadRequest
	}

	return nil
}

// uuidParam достаёт UUID из path-параметра chi.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, httperr.ErrBadRequest
	}

	return id, nil
}

// userID достаёт ID аутентифицированного пользователя из контекста.
// Отсутствие значения на маршруте под Auth-мидлваром — программная
// ошибка сборки роутера, отвечаем 401.
func userID(r *http.Request) (uuid.UUID, error) {
	id, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	return id, nil
}

// setSessionCookies выставляет пару httponly-cookie с max-age,
// равным TTL соответствующего токена.
func (h *Handlers) setSessionCookies(w http.ResponseWriter, pair *models.TokenPair) {
	http.SetCookie(w, h.sessionCookie(h.cfg.CookieName, pair.AccessToken, h.cfg.AccessTokenTTL))
	http.SetCookie(w, h.sessionCookie(h.cfg.RefreshCookieName(), pair.RefreshToken, h.cfg.RefreshTokenTTL))
}

// clearSessionCookies сбрасывает обе cookie. Logout на сервере больше
// ничего не делает: состояние сессий не хранится.
func (h *Handlers) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{h.cfg.CookieName, h.cfg.RefreshCookieName()} {
		c := h.sessionCookie(name, "", 0)
		c.MaxAge = -1
		http.SetCookie(w, c)
	}
}

func (h *Handlers) sessionCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// userResponse — представление пользователя для фронта.
// PasswordHash и OTPSecret наружу не отдаются никогда.
type userResponse struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Is2FAEnabled bool      `json:"is2faEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Is2FAEnabled: u.Is2FAEnabled,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type chatResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	IsMuted    bool      `json:"isMuted"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toChatResponse(c *models.Chat) chatResponse {
	return chatResponse{
		ID:         c.ID,
		Name:       c.Name,
		IsMuted:    c.IsMuted,
		IsArchived: c.IsArchived,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type messageResponse struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chatId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toMessageResponse(m *models.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		ChatID:    m.ChatID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
