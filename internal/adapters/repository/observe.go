package repository

import (
	"errors"
	"time"

	"github.com/okian/pelada/pkg/metrics"
)

// observe records latency for op and counts the failure when *errp is set.
// A missing match is a lookup outcome, not a failure.
func observe(op string, start time.Time, errp *error) {
	metrics.RecordRepositoryLatency(op, float64(time.Since(start).Microseconds())/1000)
	if errp != nil && *errp != nil && !errors.Is(*errp, ErrMatchNotFound) {
		metrics.RecordRepositoryError(op)
	}
}
