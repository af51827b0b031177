package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	response "dealer_backoffice/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

func TestCalculateWorksheet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/worksheets/calculate", CalculateWorksheet)

	t.Run("cash deal", func(t *testing.T) {
		body := `{"deal_type":"cash","worksheet":{"purchase_price":"$20,000","license_fee":"90","tax_code":"HST"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/worksheets/calculate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.WorksheetTotalsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if res.DealType != "cash" || res.Totals.TotalTax != 2600 || res.Totals.TotalBalanceDue != 22690 {
			t.Fatalf("unexpected totals %+v", res)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/worksheets/calculate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
