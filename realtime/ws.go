package realtime

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

// Handler fans hub events for one order out to a WebSocket client.
type Handler struct {
	Hub Broadcaster
}

func NewHandler(hub Broadcaster) *Handler {
	return &Handler{Hub: hub}
}

// TrackOrder upgrades the connection and streams status-update and
// telemetry-ping events for the order until the client disconnects.
// The subscription is torn down with the connection.
func (h *Handler) TrackOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	orderID := ps.ByName("orderid")

	// on failure the upgrader has already written the error response
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("TrackOrder upgrade failed for %s: %v", orderID, err)
		return
	}

	events, cancel := h.Hub.Subscribe(orderID)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			// keeps the connection alive until the client disconnects
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				conn.Close()
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("TrackOrder write error for %s: %v", orderID, err)
				conn.Close()
				return
			}
		case <-done:
			conn.Close()
			return
		}
	}
}
