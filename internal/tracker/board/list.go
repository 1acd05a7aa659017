package board

import (
	"fmt"
	"strings"
	"sync"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/dragdrop"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/state"
)

// Card is the rendered form of a single project.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Assigned    string `json:"assigned"`
	Description string `json:"description"`
}

func NewCard(p domain.Project) Card {
	return Card{
		ID:          p.ID,
		Title:       p.Title,
		Assigned:    p.PeopleLabel() + " assigned",
		Description: p.Description,
	}
}

// View is what a list currently shows.
type View struct {
	Status    domain.Status `json:"status"`
	Heading   string        `json:"heading"`
	ListID    string        `json:"list_id"`
	Cards     []Card        `json:"cards"`
	Droppable bool          `json:"droppable"`
	Renders   int           `json:"renders"`
}

// ProjectList shows the projects of one status. It re-renders from every
// store snapshot and accepts drops for its status.
type ProjectList struct {
	status domain.Status
	target *dragdrop.DropTarget
	sub    *state.Subscription

	mu       sync.RWMutex
	assigned []domain.Project
	cards    []Card
	renders  int
}

// NewProjectList renders the current store contents and subscribes for
// further changes.
func NewProjectList(store *state.Store, status domain.Status) *ProjectList {
	l := &ProjectList{
		status: status,
		target: dragdrop.NewDropTarget(status, store),
	}
	l.render(store.Snapshot())
	l.sub = store.AddListener(l.render)
	return l
}

func (l *ProjectList) Status() domain.Status { return l.status }

func (l *ProjectList) Target() *dragdrop.DropTarget { return l.target }

func (l *ProjectList) Heading() string {
	return strings.ToUpper(string(l.status)) + " PROJECTS"
}

func (l *ProjectList) ListID() string {
	return fmt.Sprintf("%s-projects-list", l.status)
}

// Assigned returns the projects currently shown, in store order.
func (l *ProjectList) Assigned() []domain.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Project(nil), l.assigned...)
}

func (l *ProjectList) View() View {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return View{
		Status:    l.status,
		Heading:   l.Heading(),
		ListID:    l.ListID(),
		Cards:     append([]Card{}, l.cards...),
		Droppable: l.target.Droppable(),
		Renders:   l.renders,
	}
}

// Close stops the list from following the store.
func (l *ProjectList) Close() {
	l.sub.Cancel()
}

// render replaces the list contents; old cards are dropped so nothing is
// shown twice.
func (l *ProjectList) render(snapshot []domain.Project) {
	assigned := domain.FilterByStatus(snapshot, l.status)
	cards := make([]Card, 0, len(assigned))
	for _, p := range assigned {
		cards = append(cards, NewCard(p))
	}

	l.mu.Lock()
	l.assigned = assigned
	l.cards = cards
	l.renders++
	l.mu.Unlock()
}
