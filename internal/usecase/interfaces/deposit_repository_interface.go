package interfaces

import (
	"context"

	"dealer_backoffice/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for Deposit.
type IDepositRepository interface {
	Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.Deposit, error)
}
