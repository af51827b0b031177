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

// VerificationHandler serves customers and ID/licence verification.
type VerificationHandler struct {
	usecase usecase.IVerificationUseCase
}

func NewVerificationHandler(uc usecase.IVerificationUseCase) *VerificationHandler {
	return &VerificationHandler{usecase: uc}
}

func (h *VerificationHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateCustomer(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

func (h *VerificationHandler) GetCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	found, err := h.usecase.GetCustomer(c.Request.Context(), id)
	if err != nil {
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(found))
}

func (h *VerificationHandler) SearchCustomers(c *gin.Context) {
	limit, ok := searchLimit(c)
	if !ok {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	found, err := h.usecase.SearchCustomers(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(found))
}

// ScanDocument reads a licence or ID image without touching any customer.
func (h *VerificationHandler) ScanDocument(c *gin.Context) {
	var payload request.DocumentImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := h.usecase.ScanDocument(c.Request.Context(), payload.ResolveKind(), payload.Image)
	if err != nil {
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, doc)
}

// VerifyCustomer scans the document and compares it with the stored customer.
func (h *VerificationHandler) VerifyCustomer(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	var payload request.DocumentImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.VerifyCustomer(c.Request.Context(), id, payload.ResolveKind(), payload.Image)
	if err != nil {
		appErr := mapVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVerification(res.Customer, res.Document))
}

func customerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func mapVerificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "Invalid customer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocument):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT", "Document kind must be licence or id with a base64 image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentUnreadable):
		return pkg.NewDomainErrorSimple("DOCUMENT_UNREADABLE", "Document could not be read", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrVerificationMismatch):
		return pkg.NewDomainErrorSimple("VERIFICATION_MISMATCH", "Document does not match the customer", http.StatusUnprocessableEntity)
	}
	if appErr := mapWebhookError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
