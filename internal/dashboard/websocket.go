package dashboard

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket streams sidebar events for the requesting session. The
// controller outlives the socket; closing it only stops the stream.
func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s := d.sessions.FromRequest(w, r)

	// Carry a freshly issued session cookie into the handshake response.
	header := http.Header{}
	for _, c := range w.Header().Values("Set-Cookie") {
		header.Add("Set-Cookie", c)
	}

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Printf("dashboard: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("dashboard: websocket read: %v", err)
			}
			return
		}

		var ev event
		if err := json.Unmarshal(msg, &ev); err != nil {
			d.sendError(conn, "invalid message format")
			continue
		}

		res, err := d.apply(s, ev)
		if err != nil {
			d.sendError(conn, err.Error())
			continue
		}
		d.sendResponse(conn, res)
	}
}

func (d *Dashboard) sendResponse(conn *websocket.Conn, resp eventResult) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("dashboard: websocket write: %v", err)
	}
}

func (d *Dashboard) sendError(conn *websocket.Conn, message string) {
	resp := eventResult{
		Type:  "error",
		Error: message,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("dashboard: websocket write error: %v", err)
	}
}
