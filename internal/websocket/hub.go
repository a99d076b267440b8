package websocket

import (
	"sync"

	"github.com/alexdoyle/rivals-team-builder/internal/broadcast"
)

// Hub tracks live comment subscriptions and joins each one to its
// team's broadcast group. Group membership and delivery live in the
// broadcast layer; the hub only owns client lifecycle.
type Hub struct {
	layer broadcast.Layer

	mu      sync.Mutex
	clients map[*Client]bool
	stopped bool
}

func NewHub(layer broadcast.Layer) *Hub {
	return &Hub{
		layer:   layer,
		clients: make(map[*Client]bool),
	}
}

// Register adds a client and joins it to its team's comment group.
// The caller has already accepted the connection: a failed or inert
// group join leaves the socket open, it just never sees broadcasts.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		client.Close()
		return
	}
	h.clients[client] = true
	h.mu.Unlock()

	h.layer.GroupAdd(broadcast.TeamCommentsGroup(client.Slug()), client)
}

// Unregister leaves the client's group best-effort and closes it.
// Safe to call more than once.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	h.mu.Unlock()

	h.layer.GroupDiscard(broadcast.TeamCommentsGroup(client.Slug()), client)
	client.Close()
}

// ClientCount reports the number of live subscriptions.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Stop disconnects every client and refuses new registrations.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.clients = make(map[*Client]bool)
	h.mu.Unlock()

	for _, client := range clients {
		h.layer.GroupDiscard(broadcast.TeamCommentsGroup(client.Slug()), client)
		client.Close()
	}
}
