package repository

import (
	"context"
	"errors"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Costs and purchases are written by the workflow webhooks; this service only
// reads them back. Warranties are written here directly.

type CostGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICostRepository = (*CostGormRepository)(nil)

func NewCostGormRepository(db *gorm.DB) *CostGormRepository {
	return &CostGormRepository{db: db}
}

func (r *CostGormRepository) ListByStockNumber(ctx context.Context, stockNumber string) ([]entities.CostLine, error) {
	var rows []costRow
	err := r.db.WithContext(ctx).
		Where("stock_number = ?", stockNumber).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.CostLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.CostLine{
			ID:          row.ID,
			StockNumber: row.StockNumber,
			Description: row.Description,
			Vendor:      row.Vendor,
			Amount:      row.Amount,
			IncurredOn:  row.IncurredOn,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

type PurchaseGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPurchaseRepository = (*PurchaseGormRepository)(nil)

func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

func (r *PurchaseGormRepository) GetByStockNumber(ctx context.Context, stockNumber string) (entities.PurchaseRecord, error) {
	var row purchaseRow
	err := r.db.WithContext(ctx).Where("stock_number = ?", stockNumber).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.PurchaseRecord{}, nil
	}
	if err != nil {
		return entities.PurchaseRecord{}, err
	}
	return entities.PurchaseRecord{
		ID:            row.ID,
		StockNumber:   row.StockNumber,
		PurchasedFrom: row.PurchasedFrom,
		PurchaseDate:  row.PurchaseDate,
		PurchasePrice: row.PurchasePrice,
		PaymentMethod: row.PaymentMethod,
		Notes:         row.Notes,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

type WarrantyGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IWarrantyRepository = (*WarrantyGormRepository)(nil)

func NewWarrantyGormRepository(db *gorm.DB) *WarrantyGormRepository {
	return &WarrantyGormRepository{db: db}
}

func (r *WarrantyGormRepository) GetByStockNumber(ctx context.Context, stockNumber string) (entities.WarrantyRecord, error) {
	var row warrantyRow
	err := r.db.WithContext(ctx).Where("stock_number = ?", stockNumber).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.WarrantyRecord{}, nil
	}
	if err != nil {
		return entities.WarrantyRecord{}, err
	}
	return fromWarrantyRow(row), nil
}

// Upsert inserts the warranty or overwrites the one already stored for the
// same stock number.
func (r *WarrantyGormRepository) Upsert(ctx context.Context, w entities.WarrantyRecord) (entities.WarrantyRecord, error) {
	row := warrantyRow{
		StockNumber: w.StockNumber,
		Provider:    w.Provider,
		Plan:        w.Plan,
		TermMonths:  w.TermMonths,
		Kilometres:  w.Kilometres,
		Price:       w.Price,
		Deductible:  w.Deductible,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stock_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"provider", "plan", "term_months", "kilometres", "price", "deductible", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return entities.WarrantyRecord{}, err
	}
	return r.GetByStockNumber(ctx, w.StockNumber)
}

func fromWarrantyRow(row warrantyRow) entities.WarrantyRecord {
	return entities.WarrantyRecord{
		ID:          row.ID,
		StockNumber: row.StockNumber,
		Provider:    row.Provider,
		Plan:        row.Plan,
		TermMonths:  row.TermMonths,
		Kilometres:  row.Kilometres,
		Price:       row.Price,
		Deductible:  row.Deductible,
		UpdatedAt:   row.UpdatedAt,
	}
}
