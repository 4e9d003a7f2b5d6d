package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-messenger/internal/transport/http/httperr"
)

// Me — GET /user.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	user, err := h.svc.UserByID(r.Context(), uid)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

type updateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
}

// UpdateProfile — PUT /user.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var in updateProfileRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	user, err := h.svc.UpdateProfile(r.Context(), uid, in.FirstName, in.LastName, in.Email)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// DeleteMe — DELETE /user. Мягкое удаление; cookie сбрасываются сразу,
// но ранее выданные токены истекают сами по exp.
func (h *Handlers) DeleteMe(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteUser(r.Context(), uid); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.clearSessionCookies(w)
	w.WriteHeader(http.StatusNoContent)
}

type changePasswordRequest struct {
	Old string `json:"old" validate:"required"`
	New string `json:"new" validate:"required"`
}

// ChangePassword — PUT /user/reset-password.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var in changePasswordRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if err := h.svc.ChangePassword(r.Context(), uid, in.Old, in.New); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type forgotPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	RedirectURL string `json:"redirectUrl" validate:"omitempty,url"`
}

// ForgotPassword — POST /user/forgot-password.
// Ответ всегда 204: существование адреса наружу не раскрывается.
func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in forgotPasswordRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), in.Email, in.RedirectURL); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type resetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResetPassword — POST /user/reset-password.
// Завершение flow из письма: reset-токен + новый пароль.
func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in resetPasswordRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if err := h.svc.ResetPassword(r.Context(), in.Token, in.Password); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchUsers — GET /users?emailContains=.
func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	if _, err := userID(r); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	users, err := h.svc.SearchUsers(r.Context(), r.URL.Query().Get("emailContains"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}

	writeJSON(w, http.StatusOK, out)
}
