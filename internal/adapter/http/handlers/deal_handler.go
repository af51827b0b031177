package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "dealer_backoffice/internal/adapter/http/dto/request"
	response "dealer_backoffice/internal/adapter/http/dto/response"
	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase"
	"dealer_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDealPayload = pkg.NewDomainErrorSimple("INVALID_DEAL_INPUT", "Invalid deal payload", http.StatusBadRequest)
	errInvalidIfMatch     = pkg.NewDomainErrorSimple("INVALID_IF_MATCH", "If-Match must be a deal version", http.StatusBadRequest)
)

// DealHandler serves the deal form: one deal per sale, edited section by
// section.
//
// Writes take an optional version, either as "version" in the body or as an
// If-Match header (the header wins). Without one the write is last-write-wins.
type DealHandler struct {
	usecase usecase.IDealUseCase
}

func NewDealHandler(uc usecase.IDealUseCase) *DealHandler {
	return &DealHandler{usecase: uc}
}

// CreateDeal godoc
// @Summary Create a deal for a vehicle in stock
// @Tags deals
// @Accept json
// @Produce json
// @Param payload body request.CreateDealRequest true "Deal"
// @Success 201 {object} response.DealResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var payload request.CreateDealRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}

	deal, err := h.usecase.CreateDeal(c.Request.Context(), payload.StockNumber, payload.Type)
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDeal(deal))
}

// GetDeal godoc
// @Summary Get a deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.DealResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	deal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeal(deal))
}

// ListDeals godoc
// @Summary List the deals of a vehicle
// @Tags deals
// @Produce json
// @Param stock_number query string true "Stock number"
// @Success 200 {array} response.DealResponse
// @Router /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	deals, err := h.usecase.ListByStockNumber(c.Request.Context(), c.Query("stock_number"))
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeals(deals))
}

// UpdateCustomer godoc
// @Summary Save the customer section
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param payload body request.DealCustomerRequest true "Customer"
// @Success 200 {object} response.DealResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /deals/{id}/customer [put]
func (h *DealHandler) UpdateCustomer(c *gin.Context) {
	var payload request.DealCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	h.write(c, payload.Version, func(ctx context.Context, id string, version int64) (entities.Deal, error) {
		return h.usecase.UpdateCustomer(ctx, id, payload.Customer, version)
	})
}

// UpdateVehicle godoc
// @Summary Save the vehicle section
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param payload body request.DealVehicleRequest true "Vehicle"
// @Success 200 {object} response.DealResponse
// @Router /deals/{id}/vehicle [put]
func (h *DealHandler) UpdateVehicle(c *gin.Context) {
	var payload request.DealVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	h.write(c, payload.Version, func(ctx context.Context, id string, version int64) (entities.Deal, error) {
		return h.usecase.UpdateVehicle(ctx, id, payload.Vehicle, version)
	})
}

// UpdateTrade godoc
// @Summary Save the trade-in section
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param payload body request.DealTradeRequest true "Trade-in"
// @Success 200 {object} response.DealResponse
// @Router /deals/{id}/trade [put]
func (h *DealHandler) UpdateTrade(c *gin.Context) {
	var payload request.DealTradeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	h.write(c, payload.Version, func(ctx context.Context, id string, version int64) (entities.Deal, error) {
		return h.usecase.UpdateTrade(ctx, id, payload.Trade, version)
	})
}

// UpdateDisclosure godoc
// @Summary Save the disclosure section
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param payload body request.DealDisclosureRequest true "Disclosure"
// @Success 200 {object} response.DealResponse
// @Router /deals/{id}/disclosure [put]
func (h *DealHandler) UpdateDisclosure(c *gin.Context) {
	var payload request.DealDisclosureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	h.write(c, payload.Version, func(ctx context.Context, id string, version int64) (entities.Deal, error) {
		return h.usecase.UpdateDisclosure(ctx, id, payload.Disclosure, version)
	})
}

// SaveWorksheet godoc
// @Summary Recalculate and save the worksheet
// @Description Totals are recomputed server side and the worksheet is posted to the worksheet webhook before it is stored.
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param payload body request.DealWorksheetRequest true "Worksheet"
// @Success 200 {object} response.DealResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /deals/{id}/worksheet [put]
func (h *DealHandler) SaveWorksheet(c *gin.Context) {
	var payload request.DealWorksheetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	h.write(c, payload.Version, func(ctx context.Context, id string, version int64) (entities.Deal, error) {
		return h.usecase.SaveWorksheet(ctx, id, payload.Worksheet, version)
	})
}

// SaveDelivery godoc
// @Summary Record delivery of a submitted deal
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param payload body request.DealDeliveryRequest true "Delivery"
// @Success 200 {object} response.DealResponse
// @Router /deals/{id}/delivery [put]
func (h *DealHandler) SaveDelivery(c *gin.Context) {
	var payload request.DealDeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
		return
	}
	h.write(c, payload.Version, func(ctx context.Context, id string, version int64) (entities.Deal, error) {
		return h.usecase.SaveDelivery(ctx, id, payload.Delivery, version)
	})
}

// SubmitDeal godoc
// @Summary Submit a draft deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.DealResponse
// @Router /deals/{id}/submit [patch]
func (h *DealHandler) SubmitDeal(c *gin.Context) {
	h.transition(c, h.usecase.Submit)
}

// CancelDeal godoc
// @Summary Cancel a draft or submitted deal
// @Tags deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} response.DealResponse
// @Router /deals/{id}/cancel [patch]
func (h *DealHandler) CancelDeal(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

// transition handles the status routes, whose body is optional.
func (h *DealHandler) transition(c *gin.Context, fn func(ctx context.Context, id string, version int64) (entities.Deal, error)) {
	var payload request.VersionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidDealPayload.HTTPStatus, errInvalidDealPayload.ToHTTPError())
			return
		}
	}
	h.write(c, payload.Version, fn)
}

func (h *DealHandler) write(c *gin.Context, bodyVersion int64, fn func(ctx context.Context, id string, version int64) (entities.Deal, error)) {
	version, err := expectedVersion(c, bodyVersion)
	if err != nil {
		c.JSON(errInvalidIfMatch.HTTPStatus, errInvalidIfMatch.ToHTTPError())
		return
	}

	deal, err := fn(c.Request.Context(), c.Param("id"), version)
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("ETag", strconv.Quote(strconv.FormatInt(deal.Version, 10)))
	c.JSON(http.StatusOK, response.FromDeal(deal))
}

// expectedVersion reads If-Match ("3", "\"3\"" or "W/\"3\"") and falls back
// to the body version.
func expectedVersion(c *gin.Context, bodyVersion int64) (int64, error) {
	raw := strings.TrimSpace(c.GetHeader("If-Match"))
	if raw == "" || raw == "*" {
		return bodyVersion, nil
	}
	raw = strings.Trim(strings.TrimPrefix(raw, "W/"), `"`)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, errors.New("invalid If-Match")
	}
	return v, nil
}

func mapDealError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDealID), errors.Is(err, usecase.ErrInvalidStockNumber), errors.Is(err, usecase.ErrInvalidDealType):
		return invalidRequest()
	case errors.Is(err, usecase.ErrDealNotFound):
		return pkg.NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDealVersionConflict):
		return pkg.NewDomainErrorSimple("DEAL_VERSION_CONFLICT", "Deal was changed by someone else; reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaveSuperseded):
		return pkg.NewDomainErrorSimple("SAVE_SUPERSEDED", "A newer save of this deal is in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrDealNotEditable):
		return pkg.NewDomainErrorSimple("DEAL_NOT_EDITABLE", "Deal can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDealTransition):
		return pkg.NewDomainErrorSimple("INVALID_DEAL_TRANSITION", "Deal status does not allow this action", http.StatusConflict)
	}
	if appErr := mapWebhookError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
