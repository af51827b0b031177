package interfaces

import (
	"context"
	"errors"

	"dealer_backoffice/internal/domain/entities"
)

// ErrVersionConflict is returned when a conditional write finds a different
// version than the one the caller read.
var ErrVersionConflict = errors.New("version conflict")

// IDealRepository abstracts DynamoDB persistence for Deal.
//
// GetByID returns a zero Deal (empty ID) when nothing is stored.
// Save writes d only if the stored version still equals expectedVersion and
// returns the deal with its version bumped.
type IDealRepository interface {
	Create(ctx context.Context, d entities.Deal) (entities.Deal, error)
	GetByID(ctx context.Context, id string) (entities.Deal, error)
	ListByStockNumber(ctx context.Context, stockNumber string) ([]entities.Deal, error)
	Save(ctx context.Context, d entities.Deal, expectedVersion int64) (entities.Deal, error)
}
