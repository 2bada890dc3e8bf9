package engine

import (
	"sync"

	"dashboard/internal/core/domain/model/summary"
)

// Snapshot keeps the most recent summary. Summaries are ordered by the "now"
// they were computed for, not by when they finished: a slow run for an older
// instant never replaces a newer result.
type Snapshot struct {
	mu     sync.RWMutex
	latest *summary.Summary
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Publish stores s unless the held summary was computed for a later instant.
// It reports whether s was stored. A nil s is ignored.
func (h *Snapshot) Publish(s *summary.Summary) bool {
	if s == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.latest != nil && s.GeneratedAt.Before(h.latest.GeneratedAt) {
		return false
	}
	h.latest = s
	return true
}

// Latest returns the held summary, or nil before the first publish.
// Callers must not modify it.
func (h *Snapshot) Latest() *summary.Summary {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}
