package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/transport/http/httperr"
)

type createChatRequest struct {
	Name         string      `json:"name" validate:"required"`
	Participants []uuid.UUID `json:"participants"`
}

// CreateChat — POST /chat.
// Создатель добавляется в участники автоматически.
func (h *Handlers) CreateChat(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var in createChatRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	chat, err := h.svc.CreateChat(r.Context(), uid, in.Name, in.Participants)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toChatResponse(chat))
}

// ListChats — GET /chat.
func (h *Handlers) ListChats(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	chats, err := h.svc.ChatsForUser(r.Context(), uid)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := make([]chatResponse, 0, len(chats))
	for i := range chats {
		out = append(out, toChatResponse(&chats[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// ChatByID — GET /chat/{chat_id}.
func (h *Handlers) ChatByID(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	chatID, err := uuidParam(r, "chat_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	chat, err := h.svc.ChatByID(r.Context(), uid, chatID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toChatResponse(chat))
}

type updateChatRequest struct {
	Name       string `json:"name" validate:"required"`
	IsMuted    bool   `json:"isMuted"`
	IsArchived bool   `json:"isArchived"`
}

// UpdateChat — PUT /chat/{chat_id}.
func (h *Handlers) UpdateChat(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	chatID, err := uuidParam(r, "chat_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var in updateChatRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	chat, err := h.svc.UpdateChat(r.Context(), uid, chatID, in.Name, in.IsMuted, in.IsArchived)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toChatResponse(chat))
}

// DeleteChat — DELETE /chat/{chat_id}.
func (h *Handlers) DeleteChat(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	chatID, err := uuidParam(r, "chat_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteChat(r.Context(), uid, chatID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type inviteRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// InviteToChat — POST /chat/{chat_id}/invite.
func (h *Handlers) InviteToChat(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	chatID, err := uuidParam(r, "chat_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var in inviteRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if err := h.svc.InviteToChat(r.Context(), uid, chatID, in.UserID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
