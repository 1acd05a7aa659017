package board

import (
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/dragdrop"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/state"
)

// Board is the Active and Finished lists plus the card drag coordinator.
type Board struct {
	store *state.Store
	drag  *dragdrop.Coordinator
	lists map[domain.Status]*ProjectList
}

func New(store *state.Store) *Board {
	b := &Board{
		store: store,
		drag:  dragdrop.NewCoordinator(),
		lists: make(map[domain.Status]*ProjectList, len(domain.Statuses)),
	}
	for _, s := range domain.Statuses {
		b.lists[s] = NewProjectList(store, s)
	}
	return b
}

func (b *Board) Store() *state.Store { return b.store }

func (b *Board) Drag() *dragdrop.Coordinator { return b.drag }

// List returns the list for status, or nil for an unknown status.
func (b *Board) List(status domain.Status) *ProjectList {
	return b.lists[status]
}

// Lists returns the lists in board order.
func (b *Board) Lists() []*ProjectList {
	out := make([]*ProjectList, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		out = append(out, b.lists[s])
	}
	return out
}

func (b *Board) Target(status domain.Status) *dragdrop.DropTarget {
	if l := b.lists[status]; l != nil {
		return l.Target()
	}
	return nil
}

func (b *Board) Close() {
	for _, l := range b.lists {
		l.Close()
	}
}
