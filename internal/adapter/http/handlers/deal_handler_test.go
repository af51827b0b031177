package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealer_backoffice/internal/adapter/http/handlers/mocks"
	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/domain/envelope"
	"dealer_backoffice/internal/usecase"
	"dealer_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDealHandler_CreateDeal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.POST("/v1/deals", h.CreateDeal)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals", bytes.NewBufferString(`{"type":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown deal type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.POST("/v1/deals", h.CreateDeal)

		uc.EXPECT().CreateDeal(gomock.Any(), "S1", "lease").Return(entities.Deal{}, usecase.ErrInvalidDealType)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals", bytes.NewBufferString(`{"stock_number":"S1","type":"lease"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.POST("/v1/deals", h.CreateDeal)

		uc.EXPECT().CreateDeal(gomock.Any(), "S1", "finance").Return(entities.Deal{ID: "deal-1", StockNumber: "S1", Type: entities.DealTypeFinance, Status: entities.DealStatusDraft, Version: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals", bytes.NewBufferString(`{"stock_number":"S1","type":"finance"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["deal_id"] != "deal-1" || body["status"] != "draft" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestDealHandler_GetDealNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDealUseCase(ctrl)
	h := NewDealHandler(uc)

	r := gin.New()
	r.GET("/v1/deals/:id", h.GetDeal)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Deal{}, usecase.ErrDealNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/deals/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body pkg.HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Code != "DEAL_NOT_FOUND" {
		t.Fatalf("unexpected code %q", body.Code)
	}
}

func TestDealHandler_ListDeals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDealUseCase(ctrl)
	h := NewDealHandler(uc)

	r := gin.New()
	r.GET("/v1/deals", h.ListDeals)

	uc.EXPECT().ListByStockNumber(gomock.Any(), "S1").Return([]entities.Deal{{ID: "a"}, {ID: "b"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/deals?stock_number=S1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestDealHandler_SectionVersioning(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("body version is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.PUT("/v1/deals/:id/customer", h.UpdateCustomer)

		uc.EXPECT().UpdateCustomer(gomock.Any(), "deal-1", entities.DealCustomer{FirstName: "Ana"}, int64(3)).Return(entities.Deal{ID: "deal-1", Version: 4}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/deals/deal-1/customer", bytes.NewBufferString(`{"version":3,"customer":{"first_name":"Ana"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("ETag"); got != `"4"` {
			t.Fatalf("expected ETag \"4\", got %q", got)
		}
	})

	t.Run("if-match wins over body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.PUT("/v1/deals/:id/trade", h.UpdateTrade)

		uc.EXPECT().UpdateTrade(gomock.Any(), "deal-1", gomock.Any(), int64(7)).Return(entities.Deal{}, usecase.ErrDealVersionConflict)

		req := httptest.NewRequest(http.MethodPut, "/v1/deals/deal-1/trade", bytes.NewBufferString(`{"version":3,"trade":{"make":"Ford"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("If-Match", `W/"7"`)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("bad if-match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.PUT("/v1/deals/:id/disclosure", h.UpdateDisclosure)

		req := httptest.NewRequest(http.MethodPut, "/v1/deals/deal-1/disclosure", bytes.NewBufferString(`{"disclosure":{}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("If-Match", "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDealHandler_SaveWorksheetErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
		key  string
	}{
		{"superseded", usecase.ErrSaveSuperseded, http.StatusConflict, "SAVE_SUPERSEDED"},
		{"not editable", usecase.ErrDealNotEditable, http.StatusConflict, "DEAL_NOT_EDITABLE"},
		{"rejected", fmt.Errorf("%w: price too low", envelope.ErrWebhookRejected), http.StatusUnprocessableEntity, "WEBHOOK_REJECTED"},
		{"unexpected body", fmt.Errorf("%w: %q", envelope.ErrWebhookUnexpectedBody, "saved"), http.StatusBadGateway, "WEBHOOK_UNEXPECTED_RESPONSE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIDealUseCase(ctrl)
			h := NewDealHandler(uc)

			r := gin.New()
			r.PUT("/v1/deals/:id/worksheet", h.SaveWorksheet)

			uc.EXPECT().SaveWorksheet(gomock.Any(), "deal-1", entities.WorksheetInput{PurchasePrice: "20000", TaxCode: entities.TaxCodeHST}, int64(0)).Return(entities.Deal{}, tc.err)

			req := httptest.NewRequest(http.MethodPut, "/v1/deals/deal-1/worksheet", bytes.NewBufferString(`{"worksheet":{"purchase_price":"20000","tax_code":"HST"}}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			var body pkg.HTTPError
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body.Code != tc.key {
				t.Fatalf("expected code %s, got %s", tc.key, body.Code)
			}
		})
	}
}

func TestDealHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("submit without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.PATCH("/v1/deals/:id/submit", h.SubmitDeal)

		uc.EXPECT().Submit(gomock.Any(), "deal-1", int64(0)).Return(entities.Deal{ID: "deal-1", Status: entities.DealStatusSubmitted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/deals/deal-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel with version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		h := NewDealHandler(uc)

		r := gin.New()
		r.PATCH("/v1/deals/:id/cancel", h.CancelDeal)

		uc.EXPECT().Cancel(gomock.Any(), "deal-1", int64(2)).Return(entities.Deal{}, usecase.ErrInvalidDealTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/deals/deal-1/cancel", bytes.NewBufferString(`{"version":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
