package entities

import (
	"encoding/json"
	"time"
)

// Draft is a prefill blob saved by a form while it is being filled in. It is
// never a source of truth and expires after the store TTL.
type Draft struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	ExpiresAt time.Time       `json:"expires_at"`
}
