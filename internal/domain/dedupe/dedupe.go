// Package dedupe tracks which event submissions were already accepted so a
// retried submission is applied at most once.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

const defaultMaxSize = 50000

// Deduper records seen submission keys.
type Deduper interface {
	// SeenAndRecord reports whether key was already recorded and records it
	// if not. Check and record happen atomically.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord forgets key so the submission can be retried, e.g. after the
	// queue rejected it.
	Unrecord(ctx context.Context, key string)

	Size() int64
}

// Key scopes a submission id to its match.
func Key(matchID, eventID string) string {
	return matchID + "/" + eventID
}

type slot struct {
	key string
	seq uint64
}

// inMemoryDeduper keeps keys in a map. In bounded mode the insertion order
// lives in a ring and the oldest key is evicted first.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]uint64 // key -> insertion sequence
	ring    []slot
	next    int
	seq     uint64
	maxSize int // <= 0 means unbounded
	size    atomic.Int64
}

// NewInMemoryDeduper creates a deduper holding up to 50000 keys unless
// WithMaxSize says otherwise.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]uint64)
	if d.maxSize > 0 {
		d.ring = make([]slot, d.maxSize)
	}
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}

	d.seq++
	if d.maxSize > 0 {
		d.evictSlot(d.next)
		d.ring[d.next] = slot{key: key, seq: d.seq}
		d.next = (d.next + 1) % d.maxSize
	}
	d.seen[key] = d.seq
	d.size.Store(int64(len(d.seen)))
	return false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.seen, key)
	d.size.Store(int64(len(d.seen)))
}

// evictSlot drops the key held in ring[i] if it is still live. A key that
// was unrecorded and recorded again has a newer sequence and stays.
// Must be called with d.mu held.
func (d *inMemoryDeduper) evictSlot(i int) {
	old := d.ring[i]
	if old.key == "" {
		return
	}
	if seq, ok := d.seen[old.key]; ok && seq == old.seq {
		delete(d.seen, old.key)
	}
}

func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}
