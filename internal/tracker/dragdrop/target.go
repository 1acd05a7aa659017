package dragdrop

import (
	"sync"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
)

// Mover is the part of the store a drop target needs.
type Mover interface {
	MoveProject(id string, status domain.Status) bool
}

// DropTarget is a list that accepts card drops and moves the dropped
// project into its status.
type DropTarget struct {
	status domain.Status
	mover  Mover

	mu        sync.Mutex
	droppable bool
}

func NewDropTarget(status domain.Status, mover Mover) *DropTarget {
	return &DropTarget{status: status, mover: mover}
}

func (t *DropTarget) Status() domain.Status { return t.status }

// DragOver accepts the drag when its first declared type is text/plain and
// marks the target droppable.
func (t *DropTarget) DragOver(dt DataTransfer) bool {
	if len(dt.Types) == 0 || dt.Types[0] != MimeType {
		return false
	}
	t.setDroppable(true)
	return true
}

// DragLeave clears the droppable marker.
func (t *DropTarget) DragLeave() {
	t.setDroppable(false)
}

// Drop moves the dragged project into this target's status. A payload that
// does not decode is ignored. It reports whether the store changed.
func (t *DropTarget) Drop(dt DataTransfer) bool {
	t.setDroppable(false)

	id, err := DecodePayload(dt.GetData(MimeType))
	if err != nil {
		return false
	}
	return t.mover.MoveProject(id, t.status)
}

func (t *DropTarget) Droppable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.droppable
}

func (t *DropTarget) setDroppable(v bool) {
	t.mu.Lock()
	t.droppable = v
	t.mu.Unlock()
}
