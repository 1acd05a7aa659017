package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Message is what the user is shown when a submission is rejected.
const Message = "Invalid input, try again!"

var ErrInvalidInput = errors.New("invalid project input")

// InputError is returned when a submitted project fails validation.
type InputError struct {
	Violations []Violation
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(e.Fields(), ", "))
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// Fields lists the names of the fields that failed, without duplicates.
func (e *InputError) Fields() []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range e.Violations {
		if !seen[v.Field] {
			seen[v.Field] = true
			out = append(out, v.Field)
		}
	}
	return out
}

// ProjectInput is a submitted project proposal.
type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

func (in ProjectInput) fields() []Field {
	return []Field{
		{Name: "title", Value: Text(in.Title), Rules: []Rule{Required, MinLength(5)}},
		{Name: "description", Value: Text(in.Description), Rules: []Rule{Required, MinLength(20)}},
		{Name: "people", Value: Number(in.People), Rules: []Rule{Required, Min(1), Max(5)}},
	}
}

// Validate checks every field and returns an *InputError listing all
// violations, or nil.
func (in ProjectInput) Validate() error {
	var violations []Violation
	for _, f := range in.fields() {
		violations = append(violations, Validate(f)...)
	}
	if len(violations) > 0 {
		return &InputError{Violations: violations}
	}
	return nil
}
