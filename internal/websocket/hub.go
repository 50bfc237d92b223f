// Package websocket streams transcript events to connected observers.
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/heylisten/domain/entities"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. The feed is write-only;
	// observers send nothing but control frames.
	maxMessageSize = 1024

	// Per-client outbound buffer. Slow clients get events dropped, not
	// queued without bound.
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The feed is a local observability surface.
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub maintains the set of connected observers and broadcasts transcript
// events to them.
type Hub struct {
	// Registered clients, keyed by client ID.
	clients map[string]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Transcript events queued for broadcast.
	broadcast chan entities.TranscriptEvent

	// Mutex for thread-safe access to clients map
	mu sync.RWMutex

	logger *zap.Logger
}

// NewHub creates a new transcript feed hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan entities.TranscriptEvent, sendBufferSize),
		logger:     logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			h.logger.Info("Feed client connected", zap.String("clientID", client.id))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("Feed client disconnected", zap.String("clientID", client.id))

		case event := <-h.broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("Failed to encode transcript event", zap.Error(err))
				continue
			}

			h.mu.RLock()
			for id, client := range h.clients {
				select {
				case client.send <- payload:
				default:
					h.logger.Warn("Dropping event for slow feed client", zap.String("clientID", id))
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Publish queues a transcript event for broadcast to all observers. Never
// blocks: the vector store is the record, the feed is best-effort
// observability, so events are dropped when the feed is saturated.
func (h *Hub) Publish(event entities.TranscriptEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("Transcript feed saturated, dropping event")
	}
}

// ClientCount returns the number of connected observers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan []byte

	// Observer ID for this client
	id string

	logger *zap.Logger
}

// HandleWebSocket upgrades the request and attaches the observer to the hub.
func HandleWebSocket(hub *Hub, c echo.Context, logger *zap.Logger) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", zap.Error(err))
		return err
	}

	client := &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		id:     uuid.NewString(),
		logger: logger,
	}

	hub.register <- client

	go client.writePump()
	go client.readPump()

	return nil
}

// readPump discards everything the observer sends and keeps the read
// deadline fresh through pongs. Its exit unregisters the client.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("Feed client read error", zap.String("clientID", c.id), zap.Error(err))
			}
			return
		}
	}
}

// writePump forwards broadcast payloads to the connection and pings the
// peer to keep it alive.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
