package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
}

// RegisterWebSocket mounts the WebSocket chat endpoint. Each frame is one
// conversation turn through the same composer the REST endpoint uses.
func RegisterWebSocket(r chi.Router, composer *Composer) {
	r.Get("/ws/chat", handleWebSocket(composer))
}

func handleWebSocket(composer *Composer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("chat: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("chat: websocket read: %v", err)
				}
				return
			}

			var req wsRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendWS(conn, ErrorResponse("Invalid message format"))
				continue
			}

			if req.Content == "" {
				sendWS(conn, ErrorResponse("Message is required"))
				continue
			}

			resp, sessionID, err := composer.Respond(r.Context(), req.Content, req.SessionID)
			if err != nil {
				log.Printf("chat: websocket session %s: %v", sessionID, err)
				fail := ErrorResponse(upstreamFailureMessage)
				fail.SessionID = sessionID
				sendWS(conn, fail)
				continue
			}

			sendWS(conn, resp)
		}
	}
}

func sendWS(conn *websocket.Conn, resp Response) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write: %v", err)
	}
}
