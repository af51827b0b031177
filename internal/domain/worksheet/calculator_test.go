package worksheet

import (
	"math"
	"testing"

	"dealer_backoffice/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"":          0,
		"   ":       0,
		"abc":       0,
		"12.5.3":    0,
		"1000":      1000,
		" 12 ":      12,
		"$1,234.50": 1234.5,
		"-250.75":   -250.75,
		"1 500":     1500,
		"0.1":       0.1,
		"1e3":       1000,
		"1e400":     0,
		"-1e400":    0,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseAmount(in), "input %q", in)
	}
}

func TestTaxRate(t *testing.T) {
	assert.Equal(t, 0.13, TaxRate(entities.TaxCodeHST))
	assert.Equal(t, 0.08, TaxRate(entities.TaxCodeRST))
	assert.Equal(t, 0.05, TaxRate(entities.TaxCodeGST))
	assert.Equal(t, 0.06, TaxRate(entities.TaxCodePST))
	assert.Equal(t, 0.09975, TaxRate(entities.TaxCodeQST))
	assert.Equal(t, 0.0, TaxRate(entities.TaxCodeExempt))
	assert.Equal(t, 0.13, TaxRate("hst"))
	assert.Equal(t, 0.0, TaxRate("VAT"))
	assert.Equal(t, entities.TaxCodeExempt, NormalizeTaxCode(""))
}

func TestPeriodsPerYear(t *testing.T) {
	assert.Equal(t, 52, PeriodsPerYear(entities.PaymentFrequencyWeekly))
	assert.Equal(t, 26, PeriodsPerYear(entities.PaymentFrequencyBiWeekly))
	assert.Equal(t, 26, PeriodsPerYear("biweekly"))
	assert.Equal(t, 24, PeriodsPerYear(entities.PaymentFrequencySemiMonthly))
	assert.Equal(t, 24, PeriodsPerYear("semi_monthly"))
	assert.Equal(t, 12, PeriodsPerYear(entities.PaymentFrequencyMonthly))
	assert.Equal(t, 12, PeriodsPerYear("quarterly"))
}

func TestCalculate_SubtotalNeverNegative(t *testing.T) {
	for _, tc := range []struct {
		price, discount string
		want            float64
	}{
		{"20000", "1500", 18500},
		{"1500", "1500", 0},
		{"1000", "2500", 0},
		{"", "", 0},
	} {
		got := Calculate(entities.WorksheetInput{PurchasePrice: tc.price, Discount: tc.discount}, entities.DealTypeCash)
		assert.Equal(t, tc.want, got.Subtotal, "price=%s discount=%s", tc.price, tc.discount)
		assert.GreaterOrEqual(t, got.Subtotal, 0.0)
	}
}

func TestCalculate_NetDifferenceClampedWhenTradeCoversSubtotal(t *testing.T) {
	in := entities.WorksheetInput{PurchasePrice: "10000", Discount: "500", TradeValue: "12000", TaxCode: entities.TaxCodeHST}
	got := Calculate(in, entities.DealTypeCash)

	assert.Equal(t, 9500.0, got.Subtotal)
	assert.Equal(t, 0.0, got.NetDifference)
	assert.Equal(t, 0.0, got.ComputedTax)
}

func TestCalculate_TaxCodes(t *testing.T) {
	in := entities.WorksheetInput{PurchasePrice: "1000", TaxCode: entities.TaxCodeHST}
	assert.Equal(t, 130.00, Calculate(in, entities.DealTypeCash).ComputedTax)

	in.TaxCode = entities.TaxCodeQST
	assert.Equal(t, 99.75, Calculate(in, entities.DealTypeCash).ComputedTax)

	for _, net := range []string{"0", "1", "1000", "987654.32"} {
		got := Calculate(entities.WorksheetInput{PurchasePrice: net, TaxCode: entities.TaxCodeExempt}, entities.DealTypeCash)
		assert.Equal(t, 0.0, got.ComputedTax)
	}
}

func TestCalculate_TaxOverrideKeepsComputedTax(t *testing.T) {
	in := entities.WorksheetInput{PurchasePrice: "1000", TaxCode: entities.TaxCodeHST, TaxManual: "42.10"}

	in.TaxOverride = true
	on := Calculate(in, entities.DealTypeCash)
	assert.Equal(t, 42.10, on.TotalTax)
	assert.Equal(t, 130.00, on.ComputedTax)

	in.TaxOverride = false
	off := Calculate(in, entities.DealTypeCash)
	assert.Equal(t, off.ComputedTax, off.TotalTax)
	assert.Equal(t, 130.00, off.TotalTax)
}

func TestCalculate_NegativeTradeEquityIsNotClamped(t *testing.T) {
	in := entities.WorksheetInput{ActualCashValue: "500", TradeValue: "2000"}
	got := Calculate(in, entities.DealTypeCash)

	assert.Equal(t, -1500.0, got.TradeEquity)
	assert.Equal(t, 1500.0, got.TotalBalanceDue)
}

func TestCalculate_TotalBalanceDue(t *testing.T) {
	in := entities.WorksheetInput{
		PurchasePrice:   "25000",
		Discount:        "1000",
		TradeValue:      "5000",
		ActualCashValue: "4000",
		LienPayout:      "3000",
		LicenseFee:      "120",
		TaxCode:         entities.TaxCodeHST,
	}
	got := Calculate(in, entities.DealTypeCash)

	assert.Equal(t, 24000.0, got.Subtotal)
	assert.Equal(t, 19000.0, got.NetDifference)
	assert.Equal(t, 2470.0, got.ComputedTax)
	assert.Equal(t, -1000.0, got.TradeEquity)
	// 19000 + 2470 + 120 + 3000 + 1000
	assert.Equal(t, 25590.0, got.TotalBalanceDue)
	assert.Equal(t, 0.0, got.FinancedAmount)
	assert.Equal(t, 0.0, got.Payment)
}

func TestCalculate_OverflowingInputStaysRenderable(t *testing.T) {
	for _, in := range []entities.WorksheetInput{
		{PurchasePrice: "1e400", TaxCode: entities.TaxCodeHST},
		{PurchasePrice: "1e308", LicenseFee: "1e308", LienPayout: "1e308"},
		{PurchasePrice: "1e308", TradeValue: "-1e308", ActualCashValue: "-1e308"},
	} {
		var got entities.WorksheetTotals
		require.NotPanics(t, func() { got = Calculate(in, entities.DealTypeFinance) })
		for _, v := range []float64{got.Subtotal, got.NetDifference, got.TradeEquity, got.ComputedTax, got.TotalTax, got.TotalBalanceDue, got.FinancedAmount, got.Payment, got.FinanceInterest} {
			assert.False(t, math.IsInf(v, 0) || math.IsNaN(v), "non-finite total for %+v", in)
		}
	}

	got := Calculate(entities.WorksheetInput{PurchasePrice: "1e308", LicenseFee: "1e308"}, entities.DealTypeCash)
	assert.Equal(t, 0.0, got.TotalBalanceDue)
}

func TestRound2_NonFinite(t *testing.T) {
	assert.Equal(t, 0.0, Round2(math.Inf(1)))
	assert.Equal(t, 0.0, Round2(math.Inf(-1)))
	assert.Equal(t, 0.0, Round2(math.NaN()))
	assert.Equal(t, 1.01, Round2(1.005))
}

func TestCalculate_IsIdempotent(t *testing.T) {
	in := entities.WorksheetInput{PurchasePrice: "18999.99", TaxCode: entities.TaxCodeGST, FinanceRatePercent: "7.49", FinanceTermMonths: "72", PaymentFrequency: entities.PaymentFrequencyBiWeekly}
	assert.Equal(t, Calculate(in, entities.DealTypeFinance), Calculate(in, entities.DealTypeFinance))
}

func TestAmortize_ZeroRate(t *testing.T) {
	a := Amortize(10000, 0, 12, entities.PaymentFrequencyMonthly)

	assert.Equal(t, 12, a.Periods)
	assert.Equal(t, 833.33, Round2(a.Payment))
	assert.Equal(t, 0.0, a.Interest)
}

func TestAmortize_FixedRate(t *testing.T) {
	a := Amortize(10000, 6, 12, entities.PaymentFrequencyMonthly)

	assert.Equal(t, 12, a.Periods)
	assert.InDelta(t, 0.005, a.PeriodicRate, 1e-12)
	assert.InDelta(t, 860.66, a.Payment, 0.005)
	assert.Equal(t, a.Payment*12-10000, a.Interest)
}

func TestAmortize_PeriodsClampedToOne(t *testing.T) {
	a := Amortize(1000, 0, 0, entities.PaymentFrequencyMonthly)
	assert.Equal(t, 1, a.Periods)
	assert.Equal(t, 1000.0, a.Payment)

	a = Amortize(1000, 5, -24, entities.PaymentFrequencyWeekly)
	assert.Equal(t, 1, a.Periods)

	a = Amortize(1000, 5, math.Inf(-1), entities.PaymentFrequencyWeekly)
	assert.Equal(t, 1, a.Periods)
}

func TestAmortize_HugeTermIsCapped(t *testing.T) {
	capped := Amortize(10000, 5, maxTermMonths, entities.PaymentFrequencyMonthly)
	assert.Equal(t, 1200, capped.Periods)

	for _, term := range []float64{1e30, math.Inf(1)} {
		a := Amortize(10000, 5, term, entities.PaymentFrequencyMonthly)
		assert.Equal(t, capped, a, "term %v", term)
	}

	weekly := Amortize(10000, 5, 1e30, entities.PaymentFrequencyWeekly)
	assert.Equal(t, 5200, weekly.Periods)
	assert.Less(t, weekly.Payment, 10000.0)

	got := Calculate(entities.WorksheetInput{PurchasePrice: "10000", FinanceRatePercent: "5", FinanceTermMonths: "1e30"}, entities.DealTypeFinance)
	assert.Equal(t, 1200, got.Periods)
}

func TestAmortize_ZeroPrincipal(t *testing.T) {
	a := Amortize(0, 8.99, 60, entities.PaymentFrequencyWeekly)
	assert.Equal(t, 260, a.Periods)
	assert.Equal(t, 0.0, a.Payment)
	assert.Equal(t, 0.0, a.Interest)
}

func TestCalculate_FinanceDeal(t *testing.T) {
	in := entities.WorksheetInput{
		PurchasePrice:      "10000",
		TaxCode:            entities.TaxCodeExempt,
		FinanceRatePercent: "6",
		FinanceTermMonths:  "12",
		PaymentFrequency:   entities.PaymentFrequencyMonthly,
	}
	got := Calculate(in, entities.DealTypeFinance)

	require.Equal(t, 10000.0, got.FinancedAmount)
	assert.Equal(t, 12, got.Periods)
	assert.Equal(t, 860.66, got.Payment)
	assert.Equal(t, 327.97, got.FinanceInterest)
	// interest comes from the unrounded payment (860.6643 x 12), not the
	// displayed one, which would give 327.92
	a := Amortize(10000, 6, 12, entities.PaymentFrequencyMonthly)
	assert.Equal(t, Round2(a.Payment*12-10000), got.FinanceInterest)
	assert.NotEqual(t, Round2(got.Payment*12-10000), got.FinanceInterest)

	in.FinanceRatePercent = "0"
	got = Calculate(in, entities.DealTypeFinance)
	assert.Equal(t, 833.33, got.Payment)
	assert.Equal(t, 0.0, got.FinanceInterest)
}
