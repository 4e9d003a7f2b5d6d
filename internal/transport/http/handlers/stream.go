package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pribylovaa/go-messenger/internal/bus"
	logctx "github.com/pribylovaa/go-messenger/internal/pkg/log"
	"github.com/pribylovaa/go-messenger/internal/transport/http/httperr"
)

const (
	// Дедлайн записи одного фрейма в websocket.
	wsWriteWait = 10 * time.Second
	// Сколько ждём pong от клиента, прежде чем счесть соединение мёртвым.
	wsPongWait = 60 * time.Second
	// Интервал ping; обязан быть меньше wsPongWait.
	wsPingPeriod = 54 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cookie-аутентификация уже прошла в Auth-мидлваре; происхождение
	// браузерных клиентов ограничивает обратный прокси.
	CheckOrigin: func(*http.Request) bool { return true },
}

// StreamChat — GET /chat/{chat_id}/stream.
// Server-Sent Events: каждое новое сообщение чата приходит событием
// `data: {...}`. Членство проверяется один раз при подключении;
// пропущенные события клиент добирает чтением истории.
func (h *Handlers) StreamChat(w http.ResponseWriter, r *http.Request) {
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

	flusher, ok := w.(http.Flusher)
	if !ok {
		httperr.WriteError(w, r, fmt.Errorf("streaming unsupported"))
		return
	}

	sub, err := h.svc.SubscribeChat(r.Context(), uid, chatID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-sub.Events():
			if !ok {
				// Шина отключила подписку (медленный клиент или shutdown).
				return
			}

			payload, err := json.Marshal(toMessageResponse(&msg))
			if err != nil {
				continue
			}

			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// WSChat — GET /chat/{chat_id}/ws.
// Websocket-поток тех же событий, что и SSE, плюс ping/pong для
// своевременного обнаружения обрыва.
func (h *Handlers) WSChat(w http.ResponseWriter, r *http.Request) {
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

	sub, err := h.svc.SubscribeChat(r.Context(), uid, chatID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам ответил клиенту; нам остаётся снять подписку.
		sub.Close()
		logctx.From(r.Context()).Warn("ws_upgrade_failed",
			slog.String("error", err.Error()),
		)
		return
	}

	go wsWritePump(conn, sub)
	wsReadPump(conn)
	sub.Close()
}

// wsReadPump вычитывает входящие фреймы до обрыва соединения.
// Клиентские сообщения игнорируются: отправка идёт через REST.
func wsReadPump(conn *websocket.Conn) {
	defer conn.Close()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// wsWritePump пишет события подписки и периодические ping.
func wsWritePump(conn *websocket.Conn, sub bus.Subscription) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteJSON(toMessageResponse(&msg)); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
