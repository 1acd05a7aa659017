package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectInput_Validate(t *testing.T) {
	valid := ProjectInput{
		Title:       "Build API",
		Description: "Design and implement a REST API for clients",
		People:      3,
	}

	t.Run("accepts a valid submission", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("accepts the boundaries", func(t *testing.T) {
		in := ProjectInput{Title: "Five!", Description: strings.Repeat("d", 20), People: 5}
		assert.NoError(t, in.Validate())
		in.People = 1
		assert.NoError(t, in.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*ProjectInput)
		fields []string
	}{
		{"short title", func(in *ProjectInput) { in.Title = "API" }, []string{"title"}},
		{"empty title", func(in *ProjectInput) { in.Title = "" }, []string{"title"}},
		{"short description", func(in *ProjectInput) { in.Description = "too short" }, []string{"description"}},
		{"no people", func(in *ProjectInput) { in.People = 0 }, []string{"people"}},
		{"too many people", func(in *ProjectInput) { in.People = 6 }, []string{"people"}},
		{"everything wrong", func(in *ProjectInput) { *in = ProjectInput{} }, []string{"title", "description", "people"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := in.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.fields, inputErr.Fields())
		})
	}
}
