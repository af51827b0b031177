package interfaces

import (
	"context"

	"dealer_backoffice/internal/domain/entities"
)

// Inventory repositories mirror the relational inventory tables. Lookups that
// find nothing return a zero value and a nil error.

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByStockNumber(ctx context.Context, stockNumber string) (entities.Vehicle, error)
	Search(ctx context.Context, query string, limit int) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
}

type ICostRepository interface {
	ListByStockNumber(ctx context.Context, stockNumber string) ([]entities.CostLine, error)
}

type IPurchaseRepository interface {
	GetByStockNumber(ctx context.Context, stockNumber string) (entities.PurchaseRecord, error)
}

type IWarrantyRepository interface {
	GetByStockNumber(ctx context.Context, stockNumber string) (entities.WarrantyRecord, error)
	Upsert(ctx context.Context, w entities.WarrantyRecord) (entities.WarrantyRecord, error)
}

type IFileRepository interface {
	Create(ctx context.Context, f entities.FileRecord) (entities.FileRecord, error)
	GetByID(ctx context.Context, id int64) (entities.FileRecord, error)
	ListByStockNumber(ctx context.Context, stockNumber string) ([]entities.FileRecord, error)
	Delete(ctx context.Context, id int64) error
}

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id int64) (entities.Customer, error)
	Search(ctx context.Context, query string, limit int) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
}
