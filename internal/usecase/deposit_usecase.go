package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/infrastructure/logger"
	"dealer_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrDepositNotFound                = errors.New("deposit not found")
	ErrInvalidDepositID               = errors.New("invalid deposit id")
	ErrInvalidDepositPayload          = errors.New("invalid deposit payload")
	ErrInvalidDepositAmount           = errors.New("invalid deposit amount")
	ErrDealNotSubmitted               = errors.New("deal not submitted")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDepositUseCase takes customer deposits against submitted deals.
//
// The charged amount defaults to the deal's balance due and may never exceed
// it.
type IDepositUseCase interface {
	CreateDeposit(ctx context.Context, dealID string, mpPayload json.RawMessage) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	ListByDealID(ctx context.Context, dealID string) ([]entities.Deposit, error)
	GetLatest(ctx context.Context, dealID string) (entities.Deposit, error)
}

// DepositOptions carries the payment provider settings the use case needs to
// fill in sandbox payers.
type DepositOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

type DepositUseCase struct {
	repo     interfaces.IDepositRepository
	dealRepo interfaces.IDealRepository
	gateway  interfaces.IPaymentGateway
	opts     DepositOptions
	now      func() time.Time
	log      *zap.Logger
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, dealRepo interfaces.IDealRepository, gateway interfaces.IPaymentGateway, opts DepositOptions) *DepositUseCase {
	return &DepositUseCase{
		repo:     repo,
		dealRepo: dealRepo,
		gateway:  gateway,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
		log:      zap.L().Named("deposit.usecase"),
	}
}

func (u *DepositUseCase) CreateDeposit(ctx context.Context, dealID string, mpPayload json.RawMessage) (entities.Deposit, error) {
	dealID = strings.TrimSpace(dealID)
	log := logger.WithContext(ctx, u.log).With(zap.String("deal_id", dealID))
	log.Debug("create deposit start", zap.Int("payload_len", len(mpPayload)))

	if dealID == "" {
		return entities.Deposit{}, ErrInvalidDealID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			return entities.Deposit{}, ErrInvalidDepositPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Error("payment gateway not configured")
		return entities.Deposit{}, ErrPaymentGatewayNotConfigured
	}

	deal, err := u.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		log.Error("failed loading deal", zap.Error(err))
		return entities.Deposit{}, err
	}
	if deal.ID == "" {
		return entities.Deposit{}, ErrDealNotFound
	}
	if deal.Status != entities.DealStatusSubmitted {
		log.Info("deal not submitted", zap.String("status", string(deal.Status)))
		return entities.Deposit{}, ErrDealNotSubmitted
	}
	balance := 0.0
	if deal.Totals != nil {
		balance = deal.Totals.TotalBalanceDue
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.Deposit{}, ErrInvalidDepositPayload
	}

	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("missing payment_method_id")
			return entities.Deposit{}, ErrInvalidDepositPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info("missing or invalid payer")
			return entities.Deposit{}, ErrInvalidDepositPayload
		}
	}

	amount, err := depositAmount(reqMap, balance)
	if err != nil {
		log.Info("rejected deposit amount", zap.Float64("balance", balance), zap.Error(err))
		return entities.Deposit{}, err
	}
	reqMap["transaction_amount"] = amount
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = dealID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Deposit for stock %s", deal.StockNumber)
	}
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Deposit{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return entities.Deposit{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Debug("provider response is not an object", zap.Error(err))
	}

	d := entities.Deposit{
		ID:                 providerID,
		DealID:             dealID,
		Amount:             amount,
		Date:               u.now(),
		Status:             depositStatusOf(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Error("deposit repository create failed", zap.String("deposit_id", d.ID), zap.Error(err))
		return entities.Deposit{}, err
	}
	log.Info("deposit created",
		zap.String("deposit_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Float64("amount", created.Amount),
	)
	return created, nil
}

func (u *DepositUseCase) GetByID(ctx context.Context, id string) (entities.Deposit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deposit{}, ErrInvalidDepositID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deposit{}, err
	}
	if d.ID == "" {
		return entities.Deposit{}, ErrDepositNotFound
	}
	return d, nil
}

func (u *DepositUseCase) ListByDealID(ctx context.Context, dealID string) ([]entities.Deposit, error) {
	dealID = strings.TrimSpace(dealID)
	if dealID == "" {
		return nil, ErrInvalidDealID
	}
	return u.repo.ListByDealID(ctx, dealID)
}

// GetLatest returns the most recent deposit of a deal.
func (u *DepositUseCase) GetLatest(ctx context.Context, dealID string) (entities.Deposit, error) {
	list, err := u.ListByDealID(ctx, dealID)
	if err != nil {
		return entities.Deposit{}, err
	}
	if len(list) == 0 {
		return entities.Deposit{}, ErrDepositNotFound
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list[0], nil
}

// depositAmount reads transaction_amount from the request, defaulting to the
// balance due. The result is rounded to cents.
func depositAmount(reqMap map[string]any, balance float64) (float64, error) {
	balance = roundCents(balance)
	raw, ok := reqMap["transaction_amount"]
	if !ok || raw == nil {
		if balance <= 0 {
			return 0, ErrInvalidDepositAmount
		}
		return balance, nil
	}
	amount, ok := raw.(float64)
	if !ok {
		return 0, ErrInvalidDepositAmount
	}
	amount = roundCents(amount)
	if amount <= 0 || amount > balance {
		return 0, ErrInvalidDepositAmount
	}
	return amount, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func depositStatusOf(providerStatus string) entities.DepositStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.DepositStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.DepositStatusDenied
	default:
		return entities.DepositStatusPending
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *DepositUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *DepositUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when
	// both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *DepositUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
