package chat

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/zhouzirui/mindchat/backend/internal/model/chat"
	"github.com/zhouzirui/mindchat/backend/pkg/log"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 10 * time.Second
	// Maximum inbound frame size.
	maxFrameSize = 64 << 10
)

// WebSocketHandler relays each inbound frame as an independent chat request.
type WebSocketHandler struct {
	relay    Relayer
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates the WebSocket relay.
func NewWebSocketHandler(relay Relayer) *WebSocketHandler {
	return &WebSocketHandler{
		relay: relay,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnw("[ws] upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	log.Infow("[ws] connection opened", "conn", connID, "remote", r.RemoteAddr)

	conn.SetReadLimit(maxFrameSize)

	// Frames are handled one at a time, so a connection never has two relays in flight.
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnw("[ws] read failed", "conn", connID, "error", err)
			}
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		if err := h.writeJSON(conn, h.relayFrame(r, data)); err != nil {
			log.Warnw("[ws] write failed", "conn", connID, "error", err)
			break
		}
	}

	log.Infow("[ws] connection closed", "conn", connID)
}

func (h *WebSocketHandler) relayFrame(r *http.Request, data []byte) interface{} {
	var payload chat.Request
	if err := json.Unmarshal(data, &payload); err != nil {
		return chat.ErrorReply{Error: errInvalidBody}
	}

	reply, ok := relayOnce(r.Context(), h.relay, payload)
	if !ok {
		return chat.ErrorReply{Error: errServer}
	}
	return reply
}

func (h *WebSocketHandler) writeJSON(conn *websocket.Conn, payload interface{}) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(payload)
}
