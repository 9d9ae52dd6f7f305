// File: /realtime/hub.go
package realtime

import (
	"encoding/json"
	"log"

	"wanderspot-api/models"
)

const (
	EventPostInserted = "INSERT"
	EventPostDeleted  = "DELETE"
)

// PostEvent is one realtime change notification on the posts table.
// Subscribers treat the stream as a hint to refresh a bounded list, not
// as a source of truth requiring exact merge semantics.
type PostEvent struct {
	Event string       `json:"event"`
	Post  *models.Post `json:"post,omitempty"`
	ID    string       `json:"id,omitempty"`
}

// Hub routes post change events to subscribed clients. It maintains the
// set of active clients; h.clients is touched only from run's goroutine.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run manages subscriptions and fan-out. Call in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer: drop it rather than block the hub
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// PublishPostInserted notifies subscribers that a post was created
func (h *Hub) PublishPostInserted(post *models.Post) {
	h.publish(PostEvent{Event: EventPostInserted, Post: post})
}

// PublishPostDeleted notifies subscribers that a post was removed
func (h *Hub) PublishPostDeleted(postID string) {
	h.publish(PostEvent{Event: EventPostDeleted, ID: postID})
}

func (h *Hub) publish(event PostEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: failed to marshal event: %v", err)
		return
	}

	// Delivery is best-effort; a full hub drops the event
	select {
	case h.broadcast <- payload:
	default:
		log.Printf("realtime: broadcast buffer full, dropping %s event", event.Event)
	}
}
