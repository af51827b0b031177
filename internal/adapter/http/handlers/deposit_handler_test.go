package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealer_backoffice/internal/adapter/http/handlers/mocks"
	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestDepositHandler_CreateDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc, false)

		r := gin.New()
		r.POST("/v1/deals/:id/deposits", h.CreateDeposit)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/deposits", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc, true)

		r := gin.New()
		r.POST("/v1/deals/:id/deposits", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "deal-1", json.RawMessage("{}")).Return(entities.Deposit{ID: "dep-1", DealID: "deal-1", Status: entities.DepositStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/deposits", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc, false)

		r := gin.New()
		r.POST("/v1/deals/:id/deposits", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "deal-1", gomock.Any()).Return(entities.Deposit{}, usecase.ErrDealNotSubmitted)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/deposits", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc, false)

		r := gin.New()
		r.POST("/v1/deals/:id/deposits", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "deal-1", json.RawMessage(`{"transaction_amount":500}`)).Return(entities.Deposit{ID: "dep-1", Amount: 500, Date: time.Now()}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/deposits", bytes.NewBufferString(`{"mp_payload":{"transaction_amount":500}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["deposit_id"] != "dep-1" || body["amount"] != float64(500) {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestDepositHandler_GetLatestDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc, false)

		r := gin.New()
		r.GET("/v1/deals/:id/deposits/latest", h.GetLatestDeposit)

		uc.EXPECT().GetLatest(gomock.Any(), "deal-1").Return(entities.Deposit{}, usecase.ErrDepositNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/deals/deal-1/deposits/latest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc, false)

		r := gin.New()
		r.GET("/v1/deals/:id/deposits", h.ListDeposits)

		uc.EXPECT().ListByDealID(gomock.Any(), "deal-1").Return([]entities.Deposit{{ID: "a"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deals/deal-1/deposits", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "empty body", body: "  ", want: "{}"},
		{name: "bare payload", body: `{"a":1}`, want: `{"a":1}`},
		{name: "wrapped payload", body: `{"mp_payload":{"a":1}}`, want: `{"a":1}`},
		{name: "null wrapper", body: `{"mp_payload":null}`, wantErr: true},
		{name: "invalid json", body: `{`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))

			got, err := readMPPayload(c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}

	t.Run("read error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		c.Request.Body = failingReadCloser{}

		if _, err := readMPPayload(c); err == nil {
			t.Fatalf("expected read error")
		}
	})
}

func TestMapDepositError(t *testing.T) {
	cases := map[error]int{
		usecase.ErrInvalidDepositAmount:           http.StatusBadRequest,
		usecase.ErrPaymentGatewayCustomerNotFound: http.StatusBadRequest,
		usecase.ErrPaymentGatewayInvalidUsers:     http.StatusBadRequest,
		usecase.ErrPaymentGatewayUnauthorized:     http.StatusUnauthorized,
		usecase.ErrPaymentGatewayNotConfigured:    http.StatusServiceUnavailable,
		usecase.ErrDealNotFound:                   http.StatusNotFound,
		errors.New("boom"):                        http.StatusInternalServerError,
	}
	for err, status := range cases {
		if got := mapDepositError(err).HTTPStatus; got != status {
			t.Fatalf("%v: expected %d, got %d", err, status, got)
		}
	}
}
