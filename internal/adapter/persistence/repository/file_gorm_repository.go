package repository

import (
	"context"
	"errors"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type FileGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IFileRepository = (*FileGormRepository)(nil)

func NewFileGormRepository(db *gorm.DB) *FileGormRepository {
	return &FileGormRepository{db: db}
}

func (r *FileGormRepository) Create(ctx context.Context, f entities.FileRecord) (entities.FileRecord, error) {
	row := fileRow{
		StockNumber: f.StockNumber,
		Kind:        string(f.Kind),
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		ObjectKey:   f.ObjectKey,
		URL:         f.URL,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.FileRecord{}, err
	}
	return fromFileRow(row), nil
}

func (r *FileGormRepository) GetByID(ctx context.Context, id int64) (entities.FileRecord, error) {
	var row fileRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.FileRecord{}, nil
	}
	if err != nil {
		return entities.FileRecord{}, err
	}
	return fromFileRow(row), nil
}

func (r *FileGormRepository) ListByStockNumber(ctx context.Context, stockNumber string) ([]entities.FileRecord, error) {
	var rows []fileRow
	err := r.db.WithContext(ctx).
		Where("stock_number = ?", stockNumber).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.FileRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromFileRow(row))
	}
	return out, nil
}

func (r *FileGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&fileRow{}, id).Error
}

func fromFileRow(row fileRow) entities.FileRecord {
	return entities.FileRecord{
		ID:          row.ID,
		StockNumber: row.StockNumber,
		Kind:        entities.FileKind(row.Kind),
		Name:        row.Name,
		ContentType: row.ContentType,
		Size:        row.Size,
		ObjectKey:   row.ObjectKey,
		URL:         row.URL,
		CreatedAt:   row.CreatedAt,
	}
}
