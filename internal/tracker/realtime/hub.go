package realtime

import (
	"sync"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/state"
)

// Hub hands out store subscriptions to streaming clients.
type Hub struct {
	store *state.Store

	mu      sync.Mutex
	clients int
}

func NewHub(store *state.Store) *Hub {
	return &Hub{store: store}
}

// Client receives snapshots without ever blocking the store: if the client
// falls behind, only the newest snapshot is kept.
type Client struct {
	hub     *Hub
	updates chan []domain.Project
	sub     *state.Subscription
	once    sync.Once
}

// Connect subscribes a new client and returns it with the current state.
func (h *Hub) Connect() (*Client, []domain.Project) {
	c := &Client{hub: h, updates: make(chan []domain.Project, 1)}
	c.sub = h.store.AddListener(c.deliver)

	h.mu.Lock()
	h.clients++
	h.mu.Unlock()

	return c, h.store.Snapshot()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clients
}

func (c *Client) Updates() <-chan []domain.Project { return c.updates }

// Close cancels the subscription.
func (c *Client) Close() {
	c.once.Do(func() {
		c.sub.Cancel()
		c.hub.mu.Lock()
		c.hub.clients--
		c.hub.mu.Unlock()
	})
}

// deliver runs under the store lock, so it is never called concurrently.
func (c *Client) deliver(projects []domain.Project) {
	select {
	case c.updates <- projects:
		return
	default:
	}
	select {
	case <-c.updates:
	default:
	}
	select {
	case c.updates <- projects:
	default:
	}
}
