package realtime

import (
	"encoding/json"
	"time"

	"autofixpro/internal/domain/entities"
	"autofixpro/internal/usecase/interfaces"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	clientSendBuf  = 16
	maxMessageSize = 512
)

type directMessage struct {
	username string
	payload  []byte
}

// Hub routes realtime events to connected websocket clients: each client
// subscribes to a private per-user queue and to the shared broadcast topic.
//
// Delivery is best-effort pub/sub: no acknowledgment and no persistence of
// missed events; a disconnected client simply misses the update. A client
// whose send buffer is full is dropped.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	direct     chan directMessage
	broadcast  chan []byte
}

var _ interfaces.IRealtimePublisher = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		direct:     make(chan directMessage, 64),
		broadcast:  make(chan []byte, 64),
	}
}

// Run owns the client set. Start it once on its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			log.Infof("[realtime][hub] client connected user=%s total=%d", c.username, len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				log.Infof("[realtime][hub] client disconnected user=%s total=%d", c.username, len(h.clients))
			}
		case msg := <-h.direct:
			for c := range h.clients {
				if c.username != msg.username {
					continue
				}
				h.deliver(c, msg.payload)
			}
		case payload := <-h.broadcast:
			for c := range h.clients {
				h.deliver(c, payload)
			}
		}
	}
}

func (h *Hub) deliver(c *client, payload []byte) {
	select {
	case c.send <- payload:
	default:
		// Slow consumer: drop the client rather than block the hub.
		delete(h.clients, c)
		close(c.send)
	}
}

// NotifyUser delivers an event to one addressed user's private channel.
func (h *Hub) NotifyUser(username string, event entities.NotificationEvent) {
	if username == "" {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("[realtime][hub] event marshal failed")
		return
	}
	select {
	case h.direct <- directMessage{username: username, payload: payload}:
	default:
		log.Warnf("[realtime][hub] direct queue full, dropping event for user=%s", username)
	}
}

// NotifyBroadcast delivers an event to every subscriber of the shared topic.
func (h *Hub) NotifyBroadcast(event entities.NotificationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("[realtime][hub] event marshal failed")
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		log.Warn("[realtime][hub] broadcast queue full, dropping event")
	}
}

// NotifyOrderCreated informs the owning customer and the staff topic about a
// new repair request.
func (h *Hub) NotifyOrderCreated(order entities.ServiceOrder, vehicle entities.Vehicle) {
	if username := vehicle.Owner.Username; username != "" {
		h.NotifyUser(username, BuildOrderCreatedEvent(order, vehicle))
	}
	h.NotifyBroadcast(BuildNewRequestEvent(order, vehicle))
}

// NotifyStateChange routes a state-change event to the order's owning
// customer. Silently no-ops when the owner has no resolvable username.
func (h *Hub) NotifyStateChange(order entities.ServiceOrder, vehicle entities.Vehicle, previous entities.OrderState) {
	username := vehicle.Owner.Username
	if username == "" {
		return
	}
	h.NotifyUser(username, BuildStateChangeEvent(order, vehicle, previous))
}

// NotifyCompletion routes a 100%-progress completion event to the owning
// customer.
func (h *Hub) NotifyCompletion(order entities.ServiceOrder, vehicle entities.Vehicle) {
	username := vehicle.Owner.Username
	if username == "" {
		return
	}
	h.NotifyUser(username, BuildCompletionEvent(order, vehicle))
}

// HandleConnection registers an upgraded websocket connection and starts its
// read/write pumps. The caller performs the HTTP upgrade.
func (h *Hub) HandleConnection(conn *websocket.Conn, username string) {
	c := &client{hub: h, conn: conn, username: username, send: make(chan []byte, clientSendBuf)}
	h.register <- c
	go c.writePump()
	go c.readPump()
}
