package tenant

import "errors"

var (
	ErrIdentifierDuplicated = errors.New("identifier already exists")
	ErrNotFound             = errors.New("tenant not found")
	ErrInvalidInput         = errors.New("invalid input data")
)
