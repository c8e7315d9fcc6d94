package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is what gets pushed to every connected browser tab.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub is the subscriber registry for the push channel. All connection
// set mutation happens on the Run loop; callers only touch channels.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	publish    chan Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		publish:    make(chan Event, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case event := <-h.publish:
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

func (h *Hub) Subscribe(conn *websocket.Conn)   { h.register <- conn }
func (h *Hub) Unsubscribe(conn *websocket.Conn) { h.unregister <- conn }

// Publish is best-effort: when the buffer is full the event is dropped
// rather than stalling the request that produced it.
func (h *Hub) Publish(event Event) {
	select {
	case h.publish <- event:
	default:
		log.Printf("ws publish buffer full, dropping %s event", event.Type)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws (authenticated upgrade)
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.Subscribe(conn)
	go h.listen(conn)
}

// listen drains client frames so pings are answered and a close is
// noticed; clients never send application data on this channel.
func (h *Hub) listen(conn *websocket.Conn) {
	defer h.Unsubscribe(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
