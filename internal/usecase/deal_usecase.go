package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/domain/worksheet"
	"dealer_backoffice/internal/infrastructure/logger"
	"dealer_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDealNotFound          = errors.New("deal not found")
	ErrInvalidDealID         = errors.New("invalid deal id")
	ErrInvalidStockNumber    = errors.New("invalid stock_number")
	ErrInvalidDealType       = errors.New("invalid deal type")
	ErrDealNotEditable       = errors.New("deal is not editable")
	ErrInvalidDealTransition = errors.New("invalid deal status transition")
	ErrDealVersionConflict   = errors.New("deal was modified by another request")
	ErrSaveSuperseded        = errors.New("save superseded by a newer request")
)

// IDealUseCase exposes the deal form operations.
//
// Every write takes an expectedVersion. When it is > 0 the write fails with
// ErrDealVersionConflict unless the stored deal still has that version; 0
// means the caller accepts last-write-wins.
type IDealUseCase interface {
	CreateDeal(ctx context.Context, stockNumber string, dealType string) (entities.Deal, error)
	GetByID(ctx context.Context, id string) (entities.Deal, error)
	ListByStockNumber(ctx context.Context, stockNumber string) ([]entities.Deal, error)
	UpdateCustomer(ctx context.Context, id string, c entities.DealCustomer, expectedVersion int64) (entities.Deal, error)
	UpdateVehicle(ctx context.Context, id string, v entities.DealVehicle, expectedVersion int64) (entities.Deal, error)
	UpdateTrade(ctx context.Context, id string, t entities.TradeIn, expectedVersion int64) (entities.Deal, error)
	UpdateDisclosure(ctx context.Context, id string, d entities.Disclosure, expectedVersion int64) (entities.Deal, error)
	Submit(ctx context.Context, id string, expectedVersion int64) (entities.Deal, error)
	Cancel(ctx context.Context, id string, expectedVersion int64) (entities.Deal, error)
	SaveWorksheet(ctx context.Context, id string, in entities.WorksheetInput, expectedVersion int64) (entities.Deal, error)
	SaveDelivery(ctx context.Context, id string, d entities.Delivery, expectedVersion int64) (entities.Deal, error)
}

type DealUseCase struct {
	repo     interfaces.IDealRepository
	vehicles interfaces.IVehicleRepository
	webhooks interfaces.IWebhookClient
	inflight *inFlightTracker
	now      func() time.Time
	log      *zap.Logger
}

var _ IDealUseCase = (*DealUseCase)(nil)

// NewDealUseCase wires the deal use case. vehicles may be nil, in which case
// new deals are not prefilled from inventory.
func NewDealUseCase(repo interfaces.IDealRepository, vehicles interfaces.IVehicleRepository, webhooks interfaces.IWebhookClient) *DealUseCase {
	return &DealUseCase{
		repo:     repo,
		vehicles: vehicles,
		webhooks: webhooks,
		inflight: newInFlightTracker(),
		now:      func() time.Time { return time.Now().UTC() },
		log:      zap.L().Named("deal.usecase"),
	}
}

func (u *DealUseCase) CreateDeal(ctx context.Context, stockNumber string, dealType string) (entities.Deal, error) {
	stockNumber = strings.TrimSpace(stockNumber)
	if stockNumber == "" {
		return entities.Deal{}, ErrInvalidStockNumber
	}
	typ, ok := entities.ParseDealType(strings.ToLower(strings.TrimSpace(dealType)))
	if !ok {
		return entities.Deal{}, ErrInvalidDealType
	}

	now := u.now()
	d := entities.Deal{
		ID:          uuid.NewString(),
		StockNumber: stockNumber,
		Type:        typ,
		Status:      entities.DealStatusDraft,
		Vehicle:     entities.DealVehicle{StockNumber: stockNumber},
		Worksheet: entities.WorksheetInput{
			TaxCode:          entities.TaxCodeHST,
			PaymentFrequency: entities.PaymentFrequencyMonthly,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if u.vehicles != nil {
		v, err := u.vehicles.GetByStockNumber(ctx, stockNumber)
		if err != nil {
			return entities.Deal{}, err
		}
		if v.ID != 0 {
			d.Vehicle = entities.DealVehicle{
				StockNumber: v.StockNumber,
				VIN:         v.VIN,
				Year:        v.Year,
				Make:        v.Make,
				Model:       v.Model,
				Trim:        v.Trim,
				Color:       v.Color,
				Odometer:    v.Odometer,
			}
			if v.Price > 0 {
				d.Worksheet.PurchasePrice = strconv.FormatFloat(v.Price, 'f', 2, 64)
			}
		}
	}
	totals := worksheet.Calculate(d.Worksheet, d.Type)
	d.Totals = &totals

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Deal{}, err
	}
	logger.WithContext(ctx, u.log).Info("deal created",
		zap.String("deal_id", created.ID),
		zap.String("stock_number", created.StockNumber),
		zap.String("type", string(created.Type)),
	)
	return created, nil
}

func (u *DealUseCase) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deal{}, ErrInvalidDealID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deal{}, err
	}
	if d.ID == "" {
		return entities.Deal{}, ErrDealNotFound
	}
	return d, nil
}

func (u *DealUseCase) ListByStockNumber(ctx context.Context, stockNumber string) ([]entities.Deal, error) {
	stockNumber = strings.TrimSpace(stockNumber)
	if stockNumber == "" {
		return nil, ErrInvalidStockNumber
	}
	return u.repo.ListByStockNumber(ctx, stockNumber)
}

func (u *DealUseCase) UpdateCustomer(ctx context.Context, id string, c entities.DealCustomer, expectedVersion int64) (entities.Deal, error) {
	return u.mutate(ctx, id, expectedVersion, func(d *entities.Deal) error {
		if !isEditable(d.Status) {
			return ErrDealNotEditable
		}
		d.Customer = c
		return nil
	})
}

func (u *DealUseCase) UpdateVehicle(ctx context.Context, id string, v entities.DealVehicle, expectedVersion int64) (entities.Deal, error) {
	return u.mutate(ctx, id, expectedVersion, func(d *entities.Deal) error {
		if !isEditable(d.Status) {
			return ErrDealNotEditable
		}
		// The stock number is the deal's identity in inventory.
		v.StockNumber = d.StockNumber
		d.Vehicle = v
		return nil
	})
}

func (u *DealUseCase) UpdateTrade(ctx context.Context, id string, t entities.TradeIn, expectedVersion int64) (entities.Deal, error) {
	return u.mutate(ctx, id, expectedVersion, func(d *entities.Deal) error {
		if !isEditable(d.Status) {
			return ErrDealNotEditable
		}
		d.Trade = t
		return nil
	})
}

func (u *DealUseCase) UpdateDisclosure(ctx context.Context, id string, disc entities.Disclosure, expectedVersion int64) (entities.Deal, error) {
	return u.mutate(ctx, id, expectedVersion, func(d *entities.Deal) error {
		if !isEditable(d.Status) {
			return ErrDealNotEditable
		}
		d.Disclosure = disc
		return nil
	})
}

func (u *DealUseCase) Submit(ctx context.Context, id string, expectedVersion int64) (entities.Deal, error) {
	return u.mutate(ctx, id, expectedVersion, func(d *entities.Deal) error {
		if d.Status != entities.DealStatusDraft {
			return ErrInvalidDealTransition
		}
		d.Status = entities.DealStatusSubmitted
		return nil
	})
}

func (u *DealUseCase) Cancel(ctx context.Context, id string, expectedVersion int64) (entities.Deal, error) {
	return u.mutate(ctx, id, expectedVersion, func(d *entities.Deal) error {
		if !isEditable(d.Status) {
			return ErrInvalidDealTransition
		}
		d.Status = entities.DealStatusCancelled
		return nil
	})
}

type worksheetWebhookPayload struct {
	DealID      string                   `json:"deal_id"`
	StockNumber string                   `json:"stock_number"`
	DealType    entities.DealType        `json:"deal_type"`
	Customer    entities.DealCustomer    `json:"customer"`
	Vehicle     entities.DealVehicle     `json:"vehicle"`
	Trade       entities.TradeIn         `json:"trade"`
	Worksheet   entities.WorksheetInput  `json:"worksheet"`
	Totals      entities.WorksheetTotals `json:"totals"`
}

// SaveWorksheet recomputes the totals, hands the whole worksheet to the
// worksheet webhook and stores it on the deal once the webhook acknowledges.
func (u *DealUseCase) SaveWorksheet(ctx context.Context, id string, in entities.WorksheetInput, expectedVersion int64) (entities.Deal, error) {
	d, err := u.loadForSave(ctx, id, expectedVersion)
	if err != nil {
		return entities.Deal{}, err
	}
	if !isEditable(d.Status) {
		return entities.Deal{}, ErrDealNotEditable
	}

	totals := worksheet.Calculate(in, d.Type)
	payload := worksheetWebhookPayload{
		DealID:      d.ID,
		StockNumber: d.StockNumber,
		DealType:    d.Type,
		Customer:    d.Customer,
		Vehicle:     d.Vehicle,
		Trade:       d.Trade,
		Worksheet:   in,
		Totals:      totals,
	}

	return u.saveThroughWebhook(ctx, d.ID, interfaces.WebhookWorksheet, payload, expectedVersion, func(cur *entities.Deal) error {
		if !isEditable(cur.Status) {
			return ErrDealNotEditable
		}
		cur.Worksheet = in
		t := totals
		cur.Totals = &t
		return nil
	})
}

type deliveryWebhookPayload struct {
	DealID      string                `json:"deal_id"`
	StockNumber string                `json:"stock_number"`
	Customer    entities.DealCustomer `json:"customer"`
	Vehicle     entities.DealVehicle  `json:"vehicle"`
	Delivery    entities.Delivery     `json:"delivery"`
}

// SaveDelivery records the delivery of a submitted deal and closes it.
func (u *DealUseCase) SaveDelivery(ctx context.Context, id string, delivery entities.Delivery, expectedVersion int64) (entities.Deal, error) {
	d, err := u.loadForSave(ctx, id, expectedVersion)
	if err != nil {
		return entities.Deal{}, err
	}
	if d.Status != entities.DealStatusSubmitted {
		return entities.Deal{}, ErrInvalidDealTransition
	}

	payload := deliveryWebhookPayload{
		DealID:      d.ID,
		StockNumber: d.StockNumber,
		Customer:    d.Customer,
		Vehicle:     d.Vehicle,
		Delivery:    delivery,
	}

	return u.saveThroughWebhook(ctx, d.ID, interfaces.WebhookDelivery, payload, expectedVersion, func(cur *entities.Deal) error {
		if cur.Status != entities.DealStatusSubmitted {
			return ErrInvalidDealTransition
		}
		cur.Delivery = delivery
		cur.Status = entities.DealStatusDelivered
		return nil
	})
}

func (u *DealUseCase) loadForSave(ctx context.Context, id string, expectedVersion int64) (entities.Deal, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Deal{}, err
	}
	if expectedVersion > 0 && d.Version != expectedVersion {
		return entities.Deal{}, ErrDealVersionConflict
	}
	return d, nil
}

// saveThroughWebhook posts payload under an in-flight token for the deal and
// persists apply only if the webhook acknowledged and no newer save on the
// same deal started meanwhile.
func (u *DealUseCase) saveThroughWebhook(ctx context.Context, dealID string, endpoint interfaces.WebhookEndpoint, payload interface{}, expectedVersion int64, apply func(*entities.Deal) error) (entities.Deal, error) {
	log := logger.WithContext(ctx, u.log).With(zap.String("deal_id", dealID), zap.String("endpoint", string(endpoint)))

	token := u.inflight.Begin(dealID)
	defer u.inflight.End(dealID, token)

	if _, err := u.webhooks.Save(ctx, endpoint, payload); err != nil {
		log.Warn("webhook save failed", zap.Error(err))
		return entities.Deal{}, err
	}
	if !u.inflight.IsCurrent(dealID, token) {
		log.Info("webhook save superseded; response discarded")
		return entities.Deal{}, ErrSaveSuperseded
	}

	saved, err := u.mutate(ctx, dealID, expectedVersion, apply)
	if err != nil {
		return entities.Deal{}, err
	}
	log.Info("deal saved", zap.Int64("version", saved.Version), zap.String("status", string(saved.Status)))
	return saved, nil
}

// mutate loads the deal, applies fn and writes it back conditionally on the
// version it read. Without an expected version a lost race reloads and
// reapplies until the write lands or ctx ends.
func (u *DealUseCase) mutate(ctx context.Context, id string, expectedVersion int64, fn func(*entities.Deal) error) (entities.Deal, error) {
	for {
		d, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.Deal{}, err
		}
		if expectedVersion > 0 && d.Version != expectedVersion {
			return entities.Deal{}, ErrDealVersionConflict
		}

		read := d.Version
		if err := fn(&d); err != nil {
			return entities.Deal{}, err
		}
		d.UpdatedAt = u.now()

		saved, err := u.repo.Save(ctx, d, read)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			if expectedVersion > 0 {
				return entities.Deal{}, ErrDealVersionConflict
			}
			if err := ctx.Err(); err != nil {
				return entities.Deal{}, err
			}
			continue
		}
		if err != nil {
			return entities.Deal{}, err
		}
		return saved, nil
	}
}

func isEditable(s entities.DealStatus) bool {
	return s == entities.DealStatusDraft || s == entities.DealStatusSubmitted
}
