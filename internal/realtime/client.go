package realtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client is one authenticated websocket connection. A user with several
// devices holds several clients, all subscribed to the same user channel.
type Client struct {
	userID uuid.UUID
	conn   *websocket.Conn
	send   chan Event

	// guarded by the hub's mutex
	channels map[string]struct{}
}

func newClient(userID uuid.UUID, conn *websocket.Conn) *Client {
	return &Client{
		userID:   userID,
		conn:     conn,
		send:     make(chan Event, 256),
		channels: make(map[string]struct{}),
	}
}

// Enqueue hands an event to this client only, dropping it if the buffer
// is full.
func (c *Client) Enqueue(ev Event) {
	select {
	case c.send <- ev:
	default:
	}
}

// readPump reads events off the connection and hands them to handle; it
// owns the read side and the deadline bookkeeping.
func (c *Client) readPump(g *Gateway) {
	defer func() {
		g.hub.RemoveClient(c)
		close(c.send)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var ev Event
		if err := c.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				g.logger.Warn("unexpected websocket close", "userId", c.userID, "err", err)
			}
			return
		}
		g.handle(c, ev)
	}
}

// writePump serializes all writes to the connection: queued events and
// the keepalive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
