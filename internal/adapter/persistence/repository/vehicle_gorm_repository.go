package repository

import (
	"context"
	"errors"
	"strings"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const maxSearchLimit = 50

// VehicleGormRepository reads and writes the vehicles table.
type VehicleGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IVehicleRepository = (*VehicleGormRepository)(nil)

func NewVehicleGormRepository(db *gorm.DB) *VehicleGormRepository {
	return &VehicleGormRepository{db: db}
}

func (r *VehicleGormRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	row := toVehicleRow(v)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleRow(row), nil
}

func (r *VehicleGormRepository) GetByStockNumber(ctx context.Context, stockNumber string) (entities.Vehicle, error) {
	var row vehicleRow
	err := r.db.WithContext(ctx).Where("stock_number = ?", stockNumber).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Vehicle{}, nil
	}
	if err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleRow(row), nil
}

// Search prefix-matches query against stock number, VIN, make and model.
func (r *VehicleGormRepository) Search(ctx context.Context, query string, limit int) ([]entities.Vehicle, error) {
	q := r.db.WithContext(ctx).Model(&vehicleRow{}).Order("stock_number").Limit(clampLimit(limit))
	if prefix := likePrefix(query); prefix != "" {
		q = q.Where(
			"LOWER(stock_number) LIKE ? ESCAPE '\\' OR LOWER(vin) LIKE ? ESCAPE '\\' OR LOWER(make) LIKE ? ESCAPE '\\' OR LOWER(model) LIKE ? ESCAPE '\\'",
			prefix, prefix, prefix, prefix,
		)
	}

	var rows []vehicleRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Vehicle, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromVehicleRow(row))
	}
	return out, nil
}

// Update writes every column of the vehicle identified by its stock number.
// A zero ID in the result means the vehicle does not exist.
func (r *VehicleGormRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	var existing vehicleRow
	err := r.db.WithContext(ctx).Where("stock_number = ?", v.StockNumber).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Vehicle{}, nil
	}
	if err != nil {
		return entities.Vehicle{}, err
	}

	row := toVehicleRow(v)
	row.ID = existing.ID
	row.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleRow(row), nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return ""
	}
	return likeEscaper.Replace(query) + "%"
}

func toVehicleRow(v entities.Vehicle) vehicleRow {
	return vehicleRow{
		ID:           v.ID,
		StockNumber:  v.StockNumber,
		VIN:          v.VIN,
		Year:         v.Year,
		Make:         v.Make,
		Model:        v.Model,
		Trim:         v.Trim,
		BodyStyle:    v.BodyStyle,
		Drivetrain:   v.Drivetrain,
		Engine:       v.Engine,
		Fuel:         v.Fuel,
		Transmission: v.Transmission,
		Color:        v.Color,
		Odometer:     v.Odometer,
		Price:        v.Price,
		Status:       v.Status,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func fromVehicleRow(row vehicleRow) entities.Vehicle {
	return entities.Vehicle{
		ID:           row.ID,
		StockNumber:  row.StockNumber,
		VIN:          row.VIN,
		Year:         row.Year,
		Make:         row.Make,
		Model:        row.Model,
		Trim:         row.Trim,
		BodyStyle:    row.BodyStyle,
		Drivetrain:   row.Drivetrain,
		Engine:       row.Engine,
		Fuel:         row.Fuel,
		Transmission: row.Transmission,
		Color:        row.Color,
		Odometer:     row.Odometer,
		Price:        row.Price,
		Status:       row.Status,
		Notes:        row.Notes,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
