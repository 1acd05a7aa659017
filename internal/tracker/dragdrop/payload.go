package dragdrop

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// MimeType is the only data type a card puts on a drag.
	MimeType = "text/plain"

	// EffectMove is the allowed effect for card drags.
	EffectMove = "move"

	KindMoveProject = "move-project"
)

var ErrInvalidPayload = errors.New("invalid drag payload")

// Payload is the message carried by a card drag.
type Payload struct {
	Kind      string `json:"kind"`
	ProjectID string `json:"projectId"`
}

// EncodePayload serializes a move-project message for the given project id.
func EncodePayload(projectID string) string {
	b, _ := json.Marshal(Payload{Kind: KindMoveProject, ProjectID: projectID})
	return string(b)
}

// DecodePayload returns the project id of a move-project message.
func DecodePayload(raw string) (string, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.Kind != KindMoveProject {
		return "", fmt.Errorf("%w: unexpected kind %q", ErrInvalidPayload, p.Kind)
	}
	if strings.TrimSpace(p.ProjectID) == "" {
		return "", fmt.Errorf("%w: missing project id", ErrInvalidPayload)
	}
	return p.ProjectID, nil
}

// DataTransfer is the data attached to an in-flight drag.
type DataTransfer struct {
	Types         []string          `json:"types"`
	Data          map[string]string `json:"data,omitempty"`
	EffectAllowed string            `json:"effect_allowed,omitempty"`
}

// SetData stores value under format and records the format in Types.
func (dt *DataTransfer) SetData(format, value string) {
	if dt.Data == nil {
		dt.Data = make(map[string]string)
	}
	if _, ok := dt.Data[format]; !ok {
		dt.Types = append(dt.Types, format)
	}
	dt.Data[format] = value
}

// GetData returns the value stored under format, or "".
func (dt DataTransfer) GetData(format string) string {
	return dt.Data[format]
}
