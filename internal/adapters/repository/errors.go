package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
	ErrCorruptRecord     = errors.New("corrupt stored match")
)
