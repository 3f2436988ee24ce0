package brand

import "errors"

var (
	ErrNotFound     = errors.New("brand not found")
	ErrInvalidInput = errors.New("invalid input data")
)
