package dragdrop

import (
	"sync"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
)

// DragState is the state of a single card's drag gesture.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Coordinator tracks drag gestures on cards.
type Coordinator struct {
	mu       sync.Mutex
	dragging map[string]bool
}

func NewCoordinator() *Coordinator {
	return &Coordinator{dragging: make(map[string]bool)}
}

// DragStart moves the card into Dragging and returns the data to attach to
// the drag. Only the project id travels with it.
func (c *Coordinator) DragStart(p domain.Project) DataTransfer {
	c.mu.Lock()
	c.dragging[p.ID] = true
	c.mu.Unlock()

	var dt DataTransfer
	dt.SetData(MimeType, EncodePayload(p.ID))
	dt.EffectAllowed = EffectMove
	return dt
}

// DragEnd returns the card to Idle. It never touches project state.
func (c *Coordinator) DragEnd(projectID string) {
	c.mu.Lock()
	delete(c.dragging, projectID)
	c.mu.Unlock()
}

func (c *Coordinator) State(projectID string) DragState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dragging[projectID] {
		return Dragging
	}
	return Idle
}
