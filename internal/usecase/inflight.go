package usecase

import (
	"sync"

	"github.com/google/uuid"
)

// inFlightTracker remembers the latest outbound save per resource so the
// response of an older, slower save can be told apart and dropped.
type inFlightTracker struct {
	mu     sync.Mutex
	latest map[string]string
}

func newInFlightTracker() *inFlightTracker {
	return &inFlightTracker{latest: make(map[string]string)}
}

// Begin issues a token for key that supersedes any earlier one.
func (t *inFlightTracker) Begin(key string) string {
	token := uuid.NewString()
	t.mu.Lock()
	t.latest[key] = token
	t.mu.Unlock()
	return token
}

func (t *inFlightTracker) IsCurrent(key, token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest[key] == token
}

// End forgets key unless a newer save took over.
func (t *inFlightTracker) End(key, token string) {
	t.mu.Lock()
	if t.latest[key] == token {
		delete(t.latest, key)
	}
	t.mu.Unlock()
}
