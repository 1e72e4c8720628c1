package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted        = errors.New("service not started")
	ErrBatchSpansMatches = errors.New("batch events must target a single match")
	ErrBatchTooLarge     = errors.New("batch exceeds the maximum size")
	ErrBackpressure      = errors.New("event queue is full")
	ErrMatchExists       = errors.New("match already exists")
)
