package diagnostic

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // bench dashboard, any origin
}

// client is a single connected diagnostic websocket consumer: a send
// channel drained by a dedicated writePump goroutine so a slow client
// never blocks the hub's broadcast loop.
type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan View
}

// Hub fans out one View per completed tick to every connected websocket
// client via a register/unregister/broadcast select loop.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	input      chan View
}

// NewHub returns a Hub ready to Run.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		input:      make(chan View, 16),
	}
}

// Publish pushes a new View to the hub's broadcast loop. Non-blocking:
// if the hub's input buffer is full (broadcast loop stalled) the tick is
// dropped rather than blocking the control loop's tick callback.
func (h *Hub) Publish(v View) {
	select {
	case h.input <- v:
	default:
	}
}

// Run drives the hub's register/unregister/broadcast loop. Call it in
// its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			slog.Info("diagnostic client connected", "id", c.id, "total", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				slog.Info("diagnostic client disconnected", "id", c.id, "total", len(h.clients))
			}
		case v := <-h.input:
			for c := range h.clients {
				select {
				case c.send <- v:
				default:
					// Slow client: drop this tick, don't kill the hub.
				}
			}
		}
	}
}

// ServeWS upgrades an HTTP request to a websocket and registers the new
// client with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{id: uuid.New(), conn: conn, send: make(chan View, 8)}
	h.register <- c

	go c.writePump()
	go c.readPump(h)
}

func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for v := range c.send {
		if err := c.conn.WriteJSON(v); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
