package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "dealer_backoffice/internal/adapter/http/dto/response"
	"dealer_backoffice/internal/infrastructure/logger"
	"dealer_backoffice/internal/usecase"
	"dealer_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DepositHandler handles customer deposits taken on a deal.
type DepositHandler struct {
	usecase  usecase.IDepositUseCase
	mockMode bool
	log      *zap.Logger
}

// NewDepositHandler builds the handler. In mock mode an unreadable body is
// replaced by an empty payload instead of being rejected.
func NewDepositHandler(uc usecase.IDepositUseCase, mockMode bool) *DepositHandler {
	return &DepositHandler{usecase: uc, mockMode: mockMode, log: zap.L().Named("deposit.handler")}
}

// CreateDeposit charges a deposit for the deal in the path.
//
// The body is the Mercado Pago payment payload, either bare or wrapped as
// {"mp_payload": {...}}.
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	dealID := c.Param("id")
	log := logger.WithContext(c.Request.Context(), h.log).With(zap.String("deal_id", dealID))
	log.Info("create deposit start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn("invalid deposit payload", zap.Error(err))
			appErr := invalidRequest()
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Warn("payload invalid in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), dealID, mpPayload)
	if err != nil {
		log.Warn("create deposit failed", zap.Error(err))
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("create deposit success", zap.String("deposit_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.FromDeposit(created))
}

func (h *DepositHandler) ListDeposits(c *gin.Context) {
	deposits, err := h.usecase.ListByDealID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeposits(deposits))
}

// GetLatestDeposit returns the most recent deposit of a deal.
func (h *DepositHandler) GetLatestDeposit(c *gin.Context) {
	latest, err := h.usecase.GetLatest(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeposit(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err == nil {
		if wrapped, ok := wrapper["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDealID), errors.Is(err, usecase.ErrInvalidDepositPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return invalidRequest()
	case errors.Is(err, usecase.ErrInvalidDepositAmount):
		return pkg.NewDomainErrorSimple("INVALID_DEPOSIT_AMOUNT", "Deposit must be positive and no more than the balance due", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDealNotSubmitted):
		return pkg.NewDomainErrorSimple("DEAL_NOT_SUBMITTED", "Deal not submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
