package handlers

import (
	"errors"
	"net/http"

	"dealer_backoffice/internal/usecase"
	"dealer_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// DraftHandler stores form prefill blobs. The request body of PUT is the
// draft itself.
type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *DraftHandler) PutDraft(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, usecase.MaxDraftBytes+1)
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = usecase.ErrDraftTooLarge
		}
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.Put(c.Request.Context(), c.Param("key"), raw)
	if err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("key")); err != nil {
		appErr := mapDraftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDraftKey), errors.Is(err, usecase.ErrInvalidDraftValue):
		return invalidRequest()
	case errors.Is(err, usecase.ErrDraftTooLarge):
		return pkg.NewDomainErrorSimple("DRAFT_TOO_LARGE", "Draft exceeds the size limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
