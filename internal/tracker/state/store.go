package state

import (
	"sync"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/google/uuid"
)

// Listener receives a snapshot of every project after each mutation.
type Listener func(projects []domain.Project)

// Store is the single source of truth for projects on the board.
//
// Mutation and notification happen under one lock, so observers always see a
// consistent snapshot and receive snapshots in mutation order. Listeners run
// synchronously on the mutating goroutine and must not call back into the
// Store.
type Store struct {
	mu        sync.Mutex
	projects  []*domain.Project
	listeners []*Subscription
	newID     func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default uuid-based id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New creates an empty Store. Build one per application and pass it to
// every consumer.
func New(opts ...Option) *Store {
	s := &Store{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddListener registers fn. The same function registered twice is called twice.
func (s *Store) AddListener(fn Listener) *Subscription {
	sub := &Subscription{store: s, fn: fn}

	s.mu.Lock()
	s.listeners = append(s.listeners, sub)
	s.mu.Unlock()

	return sub
}

// AddProject appends a new active project and notifies every listener.
// Input is expected to be validated by the caller.
func (s *Store) AddProject(title, description string, people int) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &domain.Project{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      domain.StatusActive,
	}
	s.projects = append(s.projects, p)
	s.notifyLocked()

	return *p
}

// MoveProject sets the status of the project with the given id. Unknown ids,
// unknown statuses and moves to the current status are no-ops and notify
// nobody. It reports
// whether the project changed.
func (s *Store) MoveProject(id string, status domain.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findLocked(id)
	if p == nil || p.Status == status || !status.Valid() {
		return false
	}
	p.Status = status
	s.notifyLocked()

	return true
}

// Snapshot returns a copy of the current project sequence.
func (s *Store) Snapshot() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the project with the given id.
func (s *Store) Get(id string) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findLocked(id)
	if p == nil {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return *p, nil
}

func (s *Store) findLocked(id string) *domain.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) snapshotLocked() []domain.Project {
	out := make([]domain.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = *p
	}
	return out
}

// notifyLocked hands each listener its own copy so one observer cannot
// change what the next one sees.
func (s *Store) notifyLocked() {
	for _, sub := range s.listeners {
		sub.fn(s.snapshotLocked())
	}
}
