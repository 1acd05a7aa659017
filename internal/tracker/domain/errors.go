package domain

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid project status")
	ErrProjectNotFound = errors.New("project not found")
)
