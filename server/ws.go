package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed between two requests from the peer.
	readWait = 5 * time.Minute

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsError is the reply to a request that could not be served.
type wsError struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// handleWebSocket answers each JSON Request on the connection with a Response,
// or a wsError, until the peer goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	for {
		conn.SetReadDeadline(time.Now().Add(readWait))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}

		var reply interface{}
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			reply = wsError{Error: "malformed request: " + err.Error(), Status: http.StatusBadRequest}
		} else if d, err := s.Generate(r.Context(), req); err != nil {
			reply = wsError{Error: err.Error(), Status: statusFor(err)}
		} else {
			id := uuid.NewString()
			log.Printf("dungeon %s (ws): seed=%d %dx%d", id, d.Seed, d.Grid.Width(), d.Grid.Height())
			reply = NewResponse(id, d)
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("WebSocket write failed: %v", err)
			return
		}
	}
}
