// Package websocket implements the admin notification hub: connected admin
// clients receive a push event whenever the public contact form produces a
// new message.
package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/brito-dev/portfolio-backend/internal/models"
)

// MessageType represents the type of WebSocket event
type MessageType string

const (
	MessageTypeNewMessage MessageType = "new_message"
	MessageTypeError      MessageType = "error"
)

// WSEvent is the envelope for events pushed to admin clients
type WSEvent struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewMessagePayload is pushed when a contact-form submission arrives
type NewMessagePayload struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// Hub maintains the set of connected admin clients and broadcasts events
// to all of them. There is a single broadcast domain: the admin inbox.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

// Run processes register/unregister/broadcast events. Call in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Info("admin client connected", slog.Int("clients", h.ClientCount()))
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client, drop it
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// NotifyNewMessage broadcasts a new-message event to every connected client.
// Best effort: if no client is connected the event is simply dropped.
func (h *Hub) NotifyNewMessage(message *models.Message) {
	event := WSEvent{
		Type: MessageTypeNewMessage,
		Payload: NewMessagePayload{
			ID:        message.ID,
			Name:      message.Name,
			Email:     message.Email,
			Subject:   message.Subject,
			CreatedAt: message.CreatedAt,
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to marshal ws event", slog.Any("error", err))
		}
		return
	}

	select {
	case h.broadcast <- data:
	default:
		if h.logger != nil {
			h.logger.Warn("notification dropped, broadcast buffer full")
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
