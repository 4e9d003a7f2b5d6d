package handlers

import (
	"image/png"
	"net/http"

	"github.com/google/uuid"
	"github.com/pquerna/otp"

	"github.com/pribylovaa/go-messenger/internal/service"
	"github.com/pribylovaa/go-messenger/internal/transport/http/httperr"
)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// RegisterUser — POST /auth/register.
// 201 + пользователь, обе session-cookie выставлены.
func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	user, pair, err := h.svc.RegisterUser(r.Context(), in.FirstName, in.LastName, in.Email, in.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.setSessionCookies(w, pair)
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type otpRequiredResponse struct {
	OTPRequired bool      `json:"otpRequired"`
	UserID      uuid.UUID `json:"userId"`
}

// LoginUser — POST /auth/login.
// При включённой 2FA отвечает {otpRequired:true, userId} и НЕ ставит cookie.
func (h *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	res, err := h.svc.LoginUser(r.Context(), in.Email, in.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if res.OTPRequired {
		writeJSON(w, http.StatusOK, otpRequiredResponse{OTPRequired: true, UserID: res.UserID})
		return
	}

	h.setSessionCookies(w, res.Tokens)
	writeJSON(w, http.StatusOK, toUserResponse(res.User))
}

// RefreshSession — POST /auth/refresh.
// Аутентифицируется только по refresh-cookie; access может быть истёкшим.
func (h *Handlers) RefreshSession(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(h.cfg.RefreshCookieName())
	if err != nil || c.Value == "" {
		httperr.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	pair, err := h.svc.Refresh(r.Context(), c.Value)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.setSessionCookies(w, pair)
	w.WriteHeader(http.StatusNoContent)
}

// Enable2FA — POST /auth/2fa.
// Включает 2FA и отвечает PNG с QR-кодом provisioning-URI.
func (h *Handlers) Enable2FA(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	uri, err := h.svc.Enable2FA(r.Context(), uid)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	img, err := key.Image(256, 256)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_ = png.Encode(w, img)
}

type validate2FARequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Code   string    `json:"code" validate:"required,len=6,numeric"`
}

// Validate2FA — POST /auth/2fa/validate.
// Второй шаг логина: код верен -> пользователь + cookie, как у login.
func (h *Handlers) Validate2FA(w http.ResponseWriter, r *http.Request) {
	var in validate2FARequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	user, pair, err := h.svc.Validate2FA(r.Context(), in.UserID, in.Code)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.setSessionCookies(w, pair)
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Logout — POST /auth/logout.
// Сервер не хранит сессий: logout — это только сброс cookie на клиенте.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookies(w)
	w.WriteHeader(http.StatusNoContent)
}
