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

// multipartOverhead is what a form adds around the file part.
const multipartOverhead = 1 << 20

type MediaHandler struct {
	usecase usecase.IMediaUseCase
}

func NewMediaHandler(uc usecase.IMediaUseCase) *MediaHandler {
	return &MediaHandler{usecase: uc}
}

// UploadFile takes a multipart form with the file in the "file" field.
func (h *MediaHandler) UploadFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, usecase.MaxUploadBytes+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			appErr := mapMediaError(usecase.ErrFileTooLarge)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	rec, err := h.usecase.UploadFile(c.Request.Context(), c.Param("stock"), usecase.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		appErr := mapMediaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *MediaHandler) ListFiles(c *gin.Context) {
	stock := c.Param("stock")
	files, err := h.usecase.ListFiles(c.Request.Context(), stock)
	if err != nil {
		appErr := mapMediaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFiles(stock, files))
}

func (h *MediaHandler) DeleteFile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteFile(c.Request.Context(), c.Param("stock"), id); err != nil {
		appErr := mapMediaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateImages asks the image webhook for renders of the vehicle and
// records each returned URL.
func (h *MediaHandler) GenerateImages(c *gin.Context) {
	var payload request.GenerateImagesRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := invalidRequest()
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	stock := c.Param("stock")
	files, err := h.usecase.GenerateImages(c.Request.Context(), stock, payload.Prompt)
	if err != nil {
		appErr := mapMediaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFiles(stock, files))
}

func mapMediaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFile), errors.Is(err, usecase.ErrInvalidStockNumber), errors.Is(err, usecase.ErrInvalidImagePrompt):
		return invalidRequest()
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the upload limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFileNotFound):
		return pkg.NewDomainErrorSimple("FILE_NOT_FOUND", "File not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageNotConfigured):
		return pkg.NewDomainErrorSimple("STORAGE_NOT_CONFIGURED", "File storage not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrNoImagesGenerated):
		return pkg.NewDomainErrorSimple("NO_IMAGES_GENERATED", "Image generation returned no images", http.StatusBadGateway)
	}
	if appErr := mapWebhookError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
