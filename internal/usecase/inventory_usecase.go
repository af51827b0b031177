package usecase

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/domain/envelope"
	"dealer_backoffice/internal/infrastructure/logger"
	"dealer_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrVehicleAlreadyExists = errors.New("vehicle already exists")
	ErrInvalidVehicle       = errors.New("invalid vehicle")
	ErrInvalidCost          = errors.New("invalid cost line")
	ErrPurchaseNotFound     = errors.New("purchase record not found")
	ErrWarrantyNotFound     = errors.New("warranty record not found")
	ErrInvalidVIN           = errors.New("invalid vin")
	ErrDecodeNoData         = errors.New("vin decode returned no data")
	ErrDecodeBadShape       = errors.New("vin decode returned an unrecognized shape")
)

const defaultSearchLimit = 20

var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

type IInventoryUseCase interface {
	CreateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetVehicle(ctx context.Context, stockNumber string) (entities.Vehicle, error)
	SearchVehicles(ctx context.Context, query string, limit int) ([]entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)

	ListCosts(ctx context.Context, stockNumber string) ([]entities.CostLine, error)
	AddCost(ctx context.Context, c entities.CostLine) ([]entities.CostLine, error)

	GetPurchase(ctx context.Context, stockNumber string) (entities.PurchaseRecord, error)
	SavePurchase(ctx context.Context, p entities.PurchaseRecord) (entities.PurchaseRecord, error)

	GetWarranty(ctx context.Context, stockNumber string) (entities.WarrantyRecord, error)
	SaveWarranty(ctx context.Context, w entities.WarrantyRecord) (entities.WarrantyRecord, error)

	DecodeVIN(ctx context.Context, vin string) (entities.VehicleSpec, error)
}

type InventoryUseCase struct {
	vehicles  interfaces.IVehicleRepository
	costs     interfaces.ICostRepository
	purchases interfaces.IPurchaseRepository
	warranty  interfaces.IWarrantyRepository
	webhooks  interfaces.IWebhookClient
	log       *zap.Logger
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(
	vehicles interfaces.IVehicleRepository,
	costs interfaces.ICostRepository,
	purchases interfaces.IPurchaseRepository,
	warranty interfaces.IWarrantyRepository,
	webhooks interfaces.IWebhookClient,
) *InventoryUseCase {
	return &InventoryUseCase{
		vehicles:  vehicles,
		costs:     costs,
		purchases: purchases,
		warranty:  warranty,
		webhooks:  webhooks,
		log:       zap.L().Named("inventory.usecase"),
	}
}

func (u *InventoryUseCase) CreateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.StockNumber = strings.TrimSpace(v.StockNumber)
	v.VIN = strings.ToUpper(strings.TrimSpace(v.VIN))
	if v.StockNumber == "" {
		return entities.Vehicle{}, ErrInvalidStockNumber
	}
	if v.VIN != "" && !vinPattern.MatchString(v.VIN) {
		return entities.Vehicle{}, ErrInvalidVIN
	}
	if v.Price < 0 || v.Odometer < 0 {
		return entities.Vehicle{}, ErrInvalidVehicle
	}

	existing, err := u.vehicles.GetByStockNumber(ctx, v.StockNumber)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing.ID != 0 {
		return entities.Vehicle{}, ErrVehicleAlreadyExists
	}

	created, err := u.vehicles.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	logger.WithContext(ctx, u.log).Info("vehicle created", zap.String("stock_number", created.StockNumber))
	return created, nil
}

func (u *InventoryUseCase) GetVehicle(ctx context.Context, stockNumber string) (entities.Vehicle, error) {
	stockNumber = strings.TrimSpace(stockNumber)
	if stockNumber == "" {
		return entities.Vehicle{}, ErrInvalidStockNumber
	}
	v, err := u.vehicles.GetByStockNumber(ctx, stockNumber)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == 0 {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

// SearchVehicles backs the search-as-you-type box. An empty query yields an
// empty list.
func (u *InventoryUseCase) SearchVehicles(ctx context.Context, query string, limit int) ([]entities.Vehicle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entities.Vehicle{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return u.vehicles.Search(ctx, query, limit)
}

func (u *InventoryUseCase) UpdateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.StockNumber = strings.TrimSpace(v.StockNumber)
	v.VIN = strings.ToUpper(strings.TrimSpace(v.VIN))
	if v.StockNumber == "" {
		return entities.Vehicle{}, ErrInvalidStockNumber
	}
	if v.VIN != "" && !vinPattern.MatchString(v.VIN) {
		return entities.Vehicle{}, ErrInvalidVIN
	}
	if v.Price < 0 || v.Odometer < 0 {
		return entities.Vehicle{}, ErrInvalidVehicle
	}

	updated, err := u.vehicles.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if updated.ID == 0 {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *InventoryUseCase) ListCosts(ctx context.Context, stockNumber string) ([]entities.CostLine, error) {
	if _, err := u.GetVehicle(ctx, stockNumber); err != nil {
		return nil, err
	}
	return u.costs.ListByStockNumber(ctx, strings.TrimSpace(stockNumber))
}

// AddCost submits a cost line through the cost webhook, which owns the write,
// and returns the list as read back afterwards.
func (u *InventoryUseCase) AddCost(ctx context.Context, c entities.CostLine) ([]entities.CostLine, error) {
	c.StockNumber = strings.TrimSpace(c.StockNumber)
	c.Description = strings.TrimSpace(c.Description)
	if c.Description == "" || c.Amount <= 0 || math.IsInf(c.Amount, 0) {
		return nil, ErrInvalidCost
	}
	if _, err := u.GetVehicle(ctx, c.StockNumber); err != nil {
		return nil, err
	}

	if _, err := u.webhooks.Save(ctx, interfaces.WebhookCost, c); err != nil {
		return nil, err
	}
	return u.costs.ListByStockNumber(ctx, c.StockNumber)
}

func (u *InventoryUseCase) GetPurchase(ctx context.Context, stockNumber string) (entities.PurchaseRecord, error) {
	stockNumber = strings.TrimSpace(stockNumber)
	if stockNumber == "" {
		return entities.PurchaseRecord{}, ErrInvalidStockNumber
	}
	p, err := u.purchases.GetByStockNumber(ctx, stockNumber)
	if err != nil {
		return entities.PurchaseRecord{}, err
	}
	if p.ID == 0 {
		return entities.PurchaseRecord{}, ErrPurchaseNotFound
	}
	return p, nil
}

// SavePurchase submits the purchase record through the purchase webhook. The
// stored row is returned when it is already visible, the submitted record
// otherwise.
func (u *InventoryUseCase) SavePurchase(ctx context.Context, p entities.PurchaseRecord) (entities.PurchaseRecord, error) {
	p.StockNumber = strings.TrimSpace(p.StockNumber)
	if p.PurchasePrice < 0 {
		return entities.PurchaseRecord{}, ErrInvalidVehicle
	}
	if _, err := u.GetVehicle(ctx, p.StockNumber); err != nil {
		return entities.PurchaseRecord{}, err
	}

	if _, err := u.webhooks.Save(ctx, interfaces.WebhookPurchase, p); err != nil {
		return entities.PurchaseRecord{}, err
	}

	stored, err := u.purchases.GetByStockNumber(ctx, p.StockNumber)
	if err != nil || stored.ID == 0 {
		if err != nil {
			logger.WithContext(ctx, u.log).Warn("purchase read back failed", zap.String("stock_number", p.StockNumber), zap.Error(err))
		}
		return p, nil
	}
	return stored, nil
}

func (u *InventoryUseCase) GetWarranty(ctx context.Context, stockNumber string) (entities.WarrantyRecord, error) {
	stockNumber = strings.TrimSpace(stockNumber)
	if stockNumber == "" {
		return entities.WarrantyRecord{}, ErrInvalidStockNumber
	}
	w, err := u.warranty.GetByStockNumber(ctx, stockNumber)
	if err != nil {
		return entities.WarrantyRecord{}, err
	}
	if w.ID == 0 {
		return entities.WarrantyRecord{}, ErrWarrantyNotFound
	}
	return w, nil
}

func (u *InventoryUseCase) SaveWarranty(ctx context.Context, w entities.WarrantyRecord) (entities.WarrantyRecord, error) {
	w.StockNumber = strings.TrimSpace(w.StockNumber)
	if w.TermMonths < 0 || w.Kilometres < 0 || w.Price < 0 || w.Deductible < 0 {
		return entities.WarrantyRecord{}, ErrInvalidVehicle
	}
	if _, err := u.GetVehicle(ctx, w.StockNumber); err != nil {
		return entities.WarrantyRecord{}, err
	}
	w.UpdatedAt = time.Now().UTC()
	return u.warranty.Upsert(ctx, w)
}

// DecodeVIN asks the VIN webhook for the vehicle specification. Decoders
// disagree on key names, so each field is picked from its known aliases.
func (u *InventoryUseCase) DecodeVIN(ctx context.Context, vin string) (entities.VehicleSpec, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if !vinPattern.MatchString(vin) {
		return entities.VehicleSpec{}, ErrInvalidVIN
	}

	res, err := u.webhooks.Fetch(ctx, interfaces.WebhookVIN, map[string]string{"vin": vin})
	switch {
	case errors.Is(err, envelope.ErrEmptyEnvelope):
		return entities.VehicleSpec{}, ErrDecodeNoData
	case errors.Is(err, envelope.ErrUnrecognizedEnvelope):
		return entities.VehicleSpec{}, ErrDecodeBadShape
	case err != nil:
		return entities.VehicleSpec{}, err
	}

	m := res.Payload
	spec := entities.VehicleSpec{
		VIN:          vin,
		Make:         envelope.String(m, "make", "Make"),
		Model:        envelope.String(m, "model", "Model"),
		Trim:         envelope.String(m, "trim", "Trim", "series", "Series"),
		BodyStyle:    envelope.String(m, "body_style", "body_class", "BodyStyle", "BodyClass"),
		Drivetrain:   envelope.String(m, "drivetrain", "drive_type", "DriveType"),
		Engine:       envelope.String(m, "engine", "Engine"),
		Fuel:         envelope.String(m, "fuel", "fuel_type", "FuelTypePrimary"),
		Transmission: envelope.String(m, "transmission", "TransmissionStyle"),
	}
	if y, ok := envelope.Number(m, "year", "model_year", "ModelYear"); ok && y > 0 {
		spec.Year = int(y)
	}

	if spec.Make == "" && spec.Model == "" && spec.Year == 0 {
		return entities.VehicleSpec{}, ErrDecodeNoData
	}
	logger.WithContext(ctx, u.log).Debug("vin decoded",
		zap.String("vin", vin),
		zap.Any("shapes", res.Shapes),
	)
	return spec, nil
}
