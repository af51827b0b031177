package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealer_backoffice/internal/adapter/http/handlers/mocks"
	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartBody(t *testing.T, field, name, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestMediaHandler_UploadFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMediaUseCase(ctrl)
		h := NewMediaHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:stock/files", h.UploadFile)

		body, ct := multipartBody(t, "other", "a.jpg", "abc")
		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/S1/files", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMediaUseCase(ctrl)
		h := NewMediaHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:stock/files", h.UploadFile)

		uc.EXPECT().UploadFile(gomock.Any(), "S1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, up usecase.Upload) (entities.FileRecord, error) {
			data, _ := io.ReadAll(up.Body)
			if up.Name != "front.jpg" || up.Size != 3 || string(data) != "abc" {
				t.Fatalf("unexpected upload %+v %q", up, data)
			}
			return entities.FileRecord{ID: 1, StockNumber: "S1", Name: up.Name}, nil
		})

		body, ct := multipartBody(t, "file", "front.jpg", "abc")
		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/S1/files", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("storage not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMediaUseCase(ctrl)
		h := NewMediaHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:stock/files", h.UploadFile)

		uc.EXPECT().UploadFile(gomock.Any(), "S1", gomock.Any()).Return(entities.FileRecord{}, usecase.ErrStorageNotConfigured)

		body, ct := multipartBody(t, "file", "front.jpg", "abc")
		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/S1/files", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestMediaHandler_DeleteFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMediaUseCase(ctrl)
		h := NewMediaHandler(uc)

		r := gin.New()
		r.DELETE("/v1/vehicles/:stock/files/:id", h.DeleteFile)

		req := httptest.NewRequest(http.MethodDelete, "/v1/vehicles/S1/files/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMediaUseCase(ctrl)
		h := NewMediaHandler(uc)

		r := gin.New()
		r.DELETE("/v1/vehicles/:stock/files/:id", h.DeleteFile)

		uc.EXPECT().DeleteFile(gomock.Any(), "S1", int64(5)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/vehicles/S1/files/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMediaHandler_GenerateImages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMediaUseCase(ctrl)
	h := NewMediaHandler(uc)

	r := gin.New()
	r.POST("/v1/vehicles/:stock/images/generate", h.GenerateImages)

	uc.EXPECT().GenerateImages(gomock.Any(), "S1", "").Return(nil, usecase.ErrNoImagesGenerated)

	req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/S1/images/generate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}
