package response

import (
	"testing"
	"time"

	"dealer_backoffice/internal/domain/entities"
)

func TestFromDeal(t *testing.T) {
	now := time.Now().UTC()
	totals := &entities.WorksheetTotals{TotalBalanceDue: 22690}
	d := entities.Deal{
		ID:          "deal-1",
		StockNumber: "S1",
		Type:        entities.DealTypeFinance,
		Status:      entities.DealStatusSubmitted,
		Totals:      totals,
		Version:     4,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromDeal(d)
	if res.ID != "deal-1" || res.DealID != "deal-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Type != "finance" || res.Status != "submitted" || res.Version != 4 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Totals == nil || res.Totals.TotalBalanceDue != 22690 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	if got := FromDeals(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFromDeposit(t *testing.T) {
	now := time.Now().UTC()
	res := FromDeposit(entities.Deposit{
		ID:                 "dep-1",
		DealID:             "deal-1",
		Amount:             500,
		Date:               now,
		Status:             entities.DepositStatusApproved,
		ProviderPayloadRaw: []byte(`{"status":"approved"}`),
	})
	if res.DepositID != "dep-1" || res.ID != "dep-1" || res.DealID != "deal-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 500 || res.Status != "approved" || !res.DepositDate.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ProviderPayloadRaw != `{"status":"approved"}` {
		t.Fatalf("unexpected raw payload: %q", res.ProviderPayloadRaw)
	}
}
