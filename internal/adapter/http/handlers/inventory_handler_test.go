package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealer_backoffice/internal/adapter/http/handlers/mocks"
	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase"
	"dealer_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInventoryHandler_CreateVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.CreateVehicle)

		uc.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, usecase.ErrVehicleAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"stock_number":"S1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.CreateVehicle)

		uc.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
			v.ID = 1
			return v, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"stock_number":"S1","make":"Honda","year":2003}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_SearchVehicles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("caps the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles", h.SearchVehicles)

		uc.EXPECT().SearchVehicles(gomock.Any(), "S1", maxSearchLimit).Return([]entities.Vehicle{{StockNumber: "S10", Make: "Honda"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?q=S1&limit=500", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 || body[0]["label"] != "S10 Honda" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		h := NewInventoryHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles", h.SearchVehicles)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?q=S1&limit=ten", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_UpdateVehicleUsesPathStock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	h := NewInventoryHandler(uc)

	r := gin.New()
	r.PUT("/v1/vehicles/:stock", h.UpdateVehicle)

	uc.EXPECT().UpdateVehicle(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
		if v.StockNumber != "S1" {
			t.Fatalf("expected path stock number, got %q", v.StockNumber)
		}
		return v, nil
	})

	req := httptest.NewRequest(http.MethodPut, "/v1/vehicles/S1", bytes.NewBufferString(`{"stock_number":"OTHER","price":15000}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestInventoryHandler_AddCost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	h := NewInventoryHandler(uc)

	r := gin.New()
	r.POST("/v1/vehicles/:stock/costs", h.AddCost)

	uc.EXPECT().AddCost(gomock.Any(), entities.CostLine{StockNumber: "S1", Description: "tires", Amount: 800}).Return([]entities.CostLine{{ID: 1, Amount: 800}, {ID: 2, Amount: 200}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/S1/costs", bytes.NewBufferString(`{"description":"tires","amount":800}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["total"] != float64(1000) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestInventoryHandler_DecodeVIN(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid", usecase.ErrInvalidVIN, http.StatusBadRequest, "INVALID_VIN"},
		{"no data", usecase.ErrDecodeNoData, http.StatusNotFound, "DECODE_NO_DATA"},
		{"bad shape", usecase.ErrDecodeBadShape, http.StatusBadGateway, "DECODE_BAD_SHAPE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIInventoryUseCase(ctrl)
			h := NewInventoryHandler(uc)

			r := gin.New()
			r.POST("/v1/vin/decode", h.DecodeVIN)

			uc.EXPECT().DecodeVIN(gomock.Any(), "1HGCM82633A004352").Return(entities.VehicleSpec{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/vin/decode", bytes.NewBufferString(`{"vin":"1HGCM82633A004352"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var body pkg.HTTPError
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body.Code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, body.Code)
			}
		})
	}
}
