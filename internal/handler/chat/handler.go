package chat

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/mindchat/backend/internal/model/chat"
	"github.com/zhouzirui/mindchat/backend/internal/render"
	"github.com/zhouzirui/mindchat/backend/pkg/utils"
)

// Client-facing error texts. Upstream details are never sent to the client.
const (
	errServer      = "Ошибка сервера"
	errInvalidBody = "invalid request body"
)

// Relayer forwards one message to the completion service.
type Relayer interface {
	Reply(ctx context.Context, sessionID, message string) (string, error)
}

// Handler serves the chat relay over HTTP and WebSocket.
type Handler struct {
	relay Relayer
	ws    *WebSocketHandler
}

// New creates the chat handler.
func New(relay Relayer) *Handler {
	return &Handler{
		relay: relay,
		ws:    NewWebSocketHandler(relay),
	}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/ws", h.ws.handleWebSocket)
}

// handleChat relays one message and answers with the reply or a generic error.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chat.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	reply, ok := relayOnce(r.Context(), h.relay, payload)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, errServer)
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}

// relayOnce runs a single relay call. The upstream call is detached from the caller's
// cancellation: once issued it runs to completion or failure.
func relayOnce(ctx context.Context, relay Relayer, payload chat.Request) (chat.Reply, bool) {
	ctx = context.WithoutCancel(ctx)

	text, err := relay.Reply(ctx, sessionLabel(ctx, payload), payload.Message)
	if err != nil {
		return chat.Reply{}, false
	}

	return chat.Reply{
		Reply:     text,
		HTML:      render.Turn(chat.Turn{Role: chat.RoleBot, Text: text}),
		SessionID: payload.SessionID,
	}, true
}

// sessionLabel picks what the logs call this exchange: the client's label if it sent one,
// otherwise the request id.
func sessionLabel(ctx context.Context, payload chat.Request) string {
	if payload.SessionID != "" {
		return payload.SessionID
	}
	return middleware.GetReqID(ctx)
}
