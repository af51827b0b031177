package interfaces

import (
	"context"
	"time"

	"dealer_backoffice/internal/domain/entities"
)

// IDraftStore keeps form drafts until their TTL runs out. Get returns a zero
// Draft (empty Key) for a missing or expired entry.
type IDraftStore interface {
	Get(ctx context.Context, key string) (entities.Draft, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) (entities.Draft, error)
	Delete(ctx context.Context, key string) error
}
