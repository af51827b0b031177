package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "dealer_backoffice/internal/adapter/http/dto/request"
	response "dealer_backoffice/internal/adapter/http/dto/response"
	"dealer_backoffice/internal/usecase"
	"dealer_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const maxSearchLimit = 50

// InventoryHandler serves vehicles and the per-vehicle records (costs,
// purchase, warranty) plus VIN decoding.
type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	v, err := h.usecase.CreateVehicle(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, v)
}

func (h *InventoryHandler) GetVehicle(c *gin.Context) {
	v, err := h.usecase.GetVehicle(c.Request.Context(), c.Param("stock"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, v)
}

// SearchVehicles backs the stock number autocomplete: ?q=<prefix>&limit=<n>.
func (h *InventoryHandler) SearchVehicles(c *gin.Context) {
	limit, ok := searchLimit(c)
	if !ok {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	vehicles, err := h.usecase.SearchVehicles(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicleSearch(vehicles))
}

func (h *InventoryHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	payload.StockNumber = c.Param("stock")
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	v := payload.ToEntity()
	v.StockNumber = c.Param("stock")

	updated, err := h.usecase.UpdateVehicle(c.Request.Context(), v)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandler) ListCosts(c *gin.Context) {
	stock := c.Param("stock")
	costs, err := h.usecase.ListCosts(c.Request.Context(), stock)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCosts(stock, costs))
}

// AddCost saves a cost line through the cost webhook and answers with the
// refreshed list.
func (h *InventoryHandler) AddCost(c *gin.Context) {
	stock := c.Param("stock")
	var payload request.CostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	costs, err := h.usecase.AddCost(c.Request.Context(), payload.ToEntity(stock))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCosts(stock, costs))
}

func (h *InventoryHandler) GetPurchase(c *gin.Context) {
	p, err := h.usecase.GetPurchase(c.Request.Context(), c.Param("stock"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *InventoryHandler) SavePurchase(c *gin.Context) {
	var payload request.PurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.SavePurchase(c.Request.Context(), payload.ToEntity(c.Param("stock")))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *InventoryHandler) GetWarranty(c *gin.Context) {
	w, err := h.usecase.GetWarranty(c.Request.Context(), c.Param("stock"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *InventoryHandler) SaveWarranty(c *gin.Context) {
	var payload request.WarrantyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	w, err := h.usecase.SaveWarranty(c.Request.Context(), payload.ToEntity(c.Param("stock")))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *InventoryHandler) DecodeVIN(c *gin.Context) {
	var payload request.VINDecodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	spec, err := h.usecase.DecodeVIN(c.Request.Context(), payload.VIN)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, spec)
}

// searchLimit reads ?limit=, capped at maxSearchLimit. Absent means the use
// case default.
func searchLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	if n > maxSearchLimit {
		n = maxSearchLimit
	}
	return n, true
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicle), errors.Is(err, usecase.ErrInvalidStockNumber), errors.Is(err, usecase.ErrInvalidCost):
		return invalidRequest()
	case errors.Is(err, usecase.ErrInvalidVIN):
		return pkg.NewDomainErrorSimple("INVALID_VIN", "VIN must be 17 characters without I, O or Q", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleAlreadyExists):
		return pkg.NewDomainErrorSimple("VEHICLE_ALREADY_EXISTS", "A vehicle with this stock number already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPurchaseNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_FOUND", "Purchase record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWarrantyNotFound):
		return pkg.NewDomainErrorSimple("WARRANTY_NOT_FOUND", "Warranty record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDecodeNoData):
		return pkg.NewDomainErrorSimple("DECODE_NO_DATA", "VIN decode returned no data", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDecodeBadShape):
		return pkg.NewDomainErrorSimple("DECODE_BAD_SHAPE", "VIN decode returned an unrecognized response", http.StatusBadGateway)
	}
	if appErr := mapWebhookError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
