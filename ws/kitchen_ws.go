package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tastyeats/entity"
)

// KitchenHub pushes newly created orders to connected kitchen clients so
// the order list updates without polling. One room for the whole kitchen.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.Order
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewKitchenHub() *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Order, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run loops for the life of the process handling joins, leaves and fanout.
func (h *KitchenHub) Run() {
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

		case order := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(order); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyOrder never blocks the caller; with no hub reader or a full buffer
// the notification is dropped (the kitchen list endpoint still has it).
func (h *KitchenHub) NotifyOrder(order *entity.Order) {
	select {
	case h.broadcast <- order:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/kitchen
func (h *KitchenHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	h.register <- conn

	// The feed is one-way; the read loop only watches for the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- conn
				return
			}
		}
	}()
}
