package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// FeedEvent is the only message the feed carries: a hint that the order
// list changed and the admin view should re-fetch. No payload, no ordering
// guarantee; at-least-once while the socket stays up.
type FeedEvent struct {
	Event string `json:"event"`
}

// OrderFeedHub fans the change signal out to every connected admin client.
type OrderFeedHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan FeedEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewOrderFeedHub() *OrderFeedHub {
	return &OrderFeedHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan FeedEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *OrderFeedHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrdersChanged queues a refresh signal. Never blocks the writer; if the
// buffer is full a signal is already on its way, which is enough.
func (h *OrderFeedHub) OrdersChanged() {
	select {
	case h.broadcast <- FeedEvent{Event: "orders_changed"}:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /admin/ws (behind the admin auth middleware)
func (h *OrderFeedHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	// the client never sends anything meaningful; the read loop only
	// detects the close
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
