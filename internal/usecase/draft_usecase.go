package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase/interfaces"
)

var (
	ErrDraftNotFound     = errors.New("draft not found")
	ErrInvalidDraftKey   = errors.New("invalid draft key")
	ErrInvalidDraftValue = errors.New("draft value must be valid JSON")
	ErrDraftTooLarge     = errors.New("draft too large")
)

const MaxDraftBytes = 256 << 10

var draftKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// IDraftUseCase keeps form prefill drafts. Drafts are never authoritative.
type IDraftUseCase interface {
	Get(ctx context.Context, key string) (entities.Draft, error)
	Put(ctx context.Context, key string, value json.RawMessage) (entities.Draft, error)
	Delete(ctx context.Context, key string) error
}

type DraftUseCase struct {
	store interfaces.IDraftStore
	ttl   time.Duration
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(store interfaces.IDraftStore, ttl time.Duration) *DraftUseCase {
	return &DraftUseCase{store: store, ttl: ttl}
}

func (u *DraftUseCase) Get(ctx context.Context, key string) (entities.Draft, error) {
	if !draftKeyPattern.MatchString(key) {
		return entities.Draft{}, ErrInvalidDraftKey
	}
	d, err := u.store.Get(ctx, key)
	if err != nil {
		return entities.Draft{}, err
	}
	if d.Key == "" {
		return entities.Draft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *DraftUseCase) Put(ctx context.Context, key string, value json.RawMessage) (entities.Draft, error) {
	if !draftKeyPattern.MatchString(key) {
		return entities.Draft{}, ErrInvalidDraftKey
	}
	if len(value) > MaxDraftBytes {
		return entities.Draft{}, ErrDraftTooLarge
	}
	if len(value) == 0 || !json.Valid(value) {
		return entities.Draft{}, ErrInvalidDraftValue
	}
	return u.store.Put(ctx, key, value, u.ttl)
}

func (u *DraftUseCase) Delete(ctx context.Context, key string) error {
	if !draftKeyPattern.MatchString(key) {
		return ErrInvalidDraftKey
	}
	return u.store.Delete(ctx, key)
}
