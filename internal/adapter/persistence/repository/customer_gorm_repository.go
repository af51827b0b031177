package repository

import (
	"context"
	"errors"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerGormRepository)(nil)

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	row := toCustomerRow(c)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRow(row), nil
}

func (r *CustomerGormRepository) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	var row customerRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRow(row), nil
}

// Search prefix-matches query against first name, last name, phone and email.
func (r *CustomerGormRepository) Search(ctx context.Context, query string, limit int) ([]entities.Customer, error) {
	q := r.db.WithContext(ctx).Model(&customerRow{}).Order("last_name, first_name, id").Limit(clampLimit(limit))
	if prefix := likePrefix(query); prefix != "" {
		q = q.Where(
			"LOWER(first_name) LIKE ? ESCAPE '\\' OR LOWER(last_name) LIKE ? ESCAPE '\\' OR LOWER(phone) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\'",
			prefix, prefix, prefix, prefix,
		)
	}

	var rows []customerRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromCustomerRow(row))
	}
	return out, nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	var existing customerRow
	err := r.db.WithContext(ctx).First(&existing, c.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}

	row := toCustomerRow(c)
	row.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRow(row), nil
}

func toCustomerRow(c entities.Customer) customerRow {
	return customerRow{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		City:          c.City,
		Province:      c.Province,
		PostalCode:    c.PostalCode,
		LicenseNumber: c.LicenseNumber,
		VerifiedAt:    c.VerifiedAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func fromCustomerRow(row customerRow) entities.Customer {
	return entities.Customer{
		ID:            row.ID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Email:         row.Email,
		Phone:         row.Phone,
		Address:       row.Address,
		City:          row.City,
		Province:      row.Province,
		PostalCode:    row.PostalCode,
		LicenseNumber: row.LicenseNumber,
		VerifiedAt:    row.VerifiedAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
