package solution

import "errors"

var (
	ErrIdentifierDuplicated = errors.New("identifier already exists")
	ErrNotFound             = errors.New("solution not found")
	ErrInvalidInput         = errors.New("invalid input data")
)
