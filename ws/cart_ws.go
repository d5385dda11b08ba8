package ws

import (
	"net/http"
	"sync"

	"backend/pkg/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type signal struct {
	Event string `json:"event"`
}

// CartHub pushes cart-change signals to connected clients. The signal carries
// no payload; clients re-read their cart over REST, which keeps the hub
// ignorant of identities and cart contents.
type CartHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	log     *zap.Logger
	unsub   func()
}

func NewCartHub(bus *events.Bus, log *zap.Logger) *CartHub {
	h := &CartHub{
		clients: make(map[*websocket.Conn]bool),
		log:     log,
	}
	h.unsub = bus.Subscribe(events.CartUpdated, h.broadcast)
	return h
}

// Close detaches the hub from the bus and drops all connections.
func (h *CartHub) Close() {
	h.unsub()
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *CartHub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(signal{Event: events.CartUpdated}); err != nil {
			h.log.Warn("ws write failed, dropping client", zap.Error(err))
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// HandleWebSocket upgrades GET /ws/cart. Inbound frames are ignored; the
// read loop exists only to notice the client going away.
func (h *CartHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	go h.drain(conn)
}

func (h *CartHub) drain(conn *websocket.Conn) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
