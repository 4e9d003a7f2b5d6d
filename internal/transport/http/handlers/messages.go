package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-messenger/internal/transport/http/httperr"
)

type messageRequest struct {
	Text string `json:"text" validate:"required"`
}

// CreateMessage — POST /chat/{chat_id}/message.
func (h *Handlers) CreateMessage(w http.ResponseWriter, r *http.Request) {
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

	var in messageRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	msg, err := h.svc.CreateMessage(r.Context(), uid, chatID, in.Text)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(msg))
}

// ListMessages — GET /chat/{chat_id}/message.
func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
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

	msgs, err := h.svc.MessagesForChat(r.Context(), uid, chatID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := make([]messageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, toMessageResponse(&msgs[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// MessageByID — GET /chat/{chat_id}/message/{message_id}.
func (h *Handlers) MessageByID(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	msgID, err := uuidParam(r, "message_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	msg, err := h.svc.MessageByID(r.Context(), uid, msgID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponse(msg))
}

// UpdateMessage — PUT /chat/{chat_id}/message/{message_id}.
// Редактировать может только автор.
func (h *Handlers) UpdateMessage(w http.ResponseWriter, r *http.Request) {
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

	msgID, err := uuidParam(r, "message_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var in messageRequest
	if err := h.decodeValid(r, &in); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	msg, err := h.svc.UpdateMessage(r.Context(), uid, chatID, msgID, in.Text)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMessageResponse(msg))
}

// DeleteMessage — DELETE /chat/{chat_id}/message/{message_id}.
func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
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

	msgID, err := uuidParam(r, "message_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if err := h.svc.DeleteMessage(r.Context(), uid, chatID, msgID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
