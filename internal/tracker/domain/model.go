package domain

import (
	"fmt"
	"strings"
)

// Project is a single project proposal tracked on the board.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      Status `json:"status"`
}

// Status is the list a project currently belongs to.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Statuses lists every status in board order.
var Statuses = []Status{StatusActive, StatusFinished}

// ParseStatus maps "active" / "finished" (any case) to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, nil
	case StatusFinished:
		return StatusFinished, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusFinished
}

// PeopleLabel renders the participant count, e.g. "1 person" or "3 persons".
func (p Project) PeopleLabel() string {
	if p.People == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d persons", p.People)
}

// FilterByStatus returns the projects with the given status, keeping snapshot order.
func FilterByStatus(projects []Project, status Status) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
