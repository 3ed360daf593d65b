package notify

import (
	"encoding/json"
	"net/http"
	"time"

	"credo-app-go/internal/domain/recognition"
	"credo-app-go/pkg/logger"
	"github.com/gorilla/websocket"
)

const EventNewRecognition = "new_recognition"

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is open to all origins, same as the CORS policy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type event struct {
	Type string                  `json:"type"`
	Data recognition.Recognition `json:"data"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	log  logger.Logger
}

// ServeWS upgrades the request and bridges hub broadcasts onto the socket
// until the peer disconnects or falls too far behind.
func ServeWS(hub *Hub, log logger.Logger, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("ws: upgrade failed", "err", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		log:  log,
	}

	unsubscribe := hub.Subscribe(func(rec recognition.Recognition) {
		payload, err := json.Marshal(event{Type: EventNewRecognition, Data: rec})
		if err != nil {
			c.log.Error("ws: marshal event", "err", err)
			return
		}
		select {
		case c.send <- payload:
		default:
			// Slow consumer: drop the connection rather than block publish.
			c.log.Warn("ws: send buffer full, dropping client", "remote", conn.RemoteAddr().String())
			_ = conn.Close()
		}
	})

	go c.writePump()
	go c.readPump(unsubscribe)
}

// readPump discards inbound frames; clients only listen. It exists to react
// to close frames and keep the pong deadline fresh.
func (c *client) readPump(unsubscribe func()) {
	defer func() {
		unsubscribe()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("ws: read error", "err", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
