package ws

import (
	"log"
	"net/http"
	"sync"

	"vipshop-backend/entity"
	"vipshop-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub fans out order events (new chat message, status decision) to
// everyone currently watching one order. The feed is additive: the polling
// GET endpoints remain the source of truth, a dropped socket just means
// the viewer catches up on its next poll.
type OrderHub struct {
	clients    map[string]map[*websocket.Conn]bool // orderID -> set of viewers
	broadcast  chan Event
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
	orders     *services.OrderService
}

type Subscription struct {
	Conn    *websocket.Conn
	OrderID string
}

// Event is what subscribers receive.
type Event struct {
	OrderID string              `json:"orderId"`
	Type    string              `json:"type"` // "message" | "status"
	Message *entity.ChatMessage `json:"message,omitempty"`
	Status  string              `json:"status,omitempty"`
	Note    string              `json:"note,omitempty"`
}

func NewOrderHub(orders *services.OrderService) *OrderHub {
	return &OrderHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan Event),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		orders:     orders,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.OrderID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// MessageAppended implements services.OrderEvents.
func (h *OrderHub) MessageAppended(orderID string, msg *entity.ChatMessage) {
	h.broadcast <- Event{OrderID: orderID, Type: "message", Message: msg}
}

// StatusChanged implements services.OrderEvents.
func (h *OrderHub) StatusChanged(orderID, status, note string) {
	h.broadcast <- Event{OrderID: orderID, Type: "status", Status: status, Note: note}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id. Knowing the order id is the read capability,
// same as the polling endpoints; appends still go through HTTP.
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	orderID := c.Param("id")

	if _, err := h.orders.Get(orderID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, OrderID: orderID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the connection's read side alive so close frames are seen;
// the feed is one-way.
func (h *OrderHub) drain(sub Subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
