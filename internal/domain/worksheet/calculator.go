// Package worksheet holds the deal worksheet arithmetic: taxes, trade equity,
// balance due and the amortized finance payment.
//
// Everything here is pure. Inputs are coerced instead of validated so a
// half-filled worksheet always renders totals; values keep full float
// precision until Calculate rounds them once for presentation.
package worksheet

import (
	"math"
	"strings"

	"dealer_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var taxRates = map[entities.TaxCode]float64{
	entities.TaxCodeHST:    0.13,
	entities.TaxCodeRST:    0.08,
	entities.TaxCodeGST:    0.05,
	entities.TaxCodePST:    0.06,
	entities.TaxCodeQST:    0.09975,
	entities.TaxCodeExempt: 0,
}

var amountCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// ParseAmount converts a user-typed amount into a float. Empty, unparsable
// or out-of-range input is 0.
func ParseAmount(s string) float64 {
	s = amountCleaner.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return finiteOrZero(d.InexactFloat64())
}

func finiteOrZero(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// NormalizeTaxCode maps any casing of a known code onto its canonical form.
// Unknown codes become Exempt.
func NormalizeTaxCode(code entities.TaxCode) entities.TaxCode {
	raw := strings.TrimSpace(string(code))
	for known := range taxRates {
		if strings.EqualFold(raw, string(known)) {
			return known
		}
	}
	return entities.TaxCodeExempt
}

// TaxRate returns the rate for a tax code as a fraction (HST -> 0.13).
func TaxRate(code entities.TaxCode) float64 {
	return taxRates[NormalizeTaxCode(code)]
}

// NormalizePaymentFrequency accepts the display names as well as compact
// spellings (biweekly, semi_monthly, ...). Unknown values fall back to Monthly.
func NormalizePaymentFrequency(freq entities.PaymentFrequency) entities.PaymentFrequency {
	key := strings.ToLower(strings.TrimSpace(string(freq)))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "weekly":
		return entities.PaymentFrequencyWeekly
	case "biweekly":
		return entities.PaymentFrequencyBiWeekly
	case "semimonthly":
		return entities.PaymentFrequencySemiMonthly
	default:
		return entities.PaymentFrequencyMonthly
	}
}

func PeriodsPerYear(freq entities.PaymentFrequency) int {
	switch NormalizePaymentFrequency(freq) {
	case entities.PaymentFrequencyWeekly:
		return 52
	case entities.PaymentFrequencyBiWeekly:
		return 26
	case entities.PaymentFrequencySemiMonthly:
		return 24
	default:
		return 12
	}
}

// Round2 rounds half away from zero to cents. Totals that overflowed to
// infinity (or NaN) render as 0.
func Round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// breakdown is the unrounded worksheet.
type breakdown struct {
	subtotal        float64
	netDifference   float64
	tradeEquity     float64
	taxRate         float64
	computedTax     float64
	totalTax        float64
	totalBalanceDue float64
	financedAmount  float64
	amortization    Amortization
}

func compute(in entities.WorksheetInput, dealType entities.DealType) breakdown {
	price := ParseAmount(in.PurchasePrice)
	discount := ParseAmount(in.Discount)
	tradeValue := ParseAmount(in.TradeValue)
	acv := ParseAmount(in.ActualCashValue)
	lien := ParseAmount(in.LienPayout)
	licence := ParseAmount(in.LicenseFee)

	var b breakdown
	b.subtotal = math.Max(0, price-discount)
	b.netDifference = math.Max(0, b.subtotal-tradeValue)
	b.tradeEquity = acv - tradeValue
	b.taxRate = TaxRate(in.TaxCode)
	b.computedTax = b.netDifference * b.taxRate
	b.totalTax = b.computedTax
	if in.TaxOverride {
		b.totalTax = ParseAmount(in.TaxManual)
	}
	b.totalBalanceDue = b.netDifference + b.totalTax + licence + lien - b.tradeEquity

	if dealType == entities.DealTypeFinance {
		b.financedAmount = b.totalBalanceDue
		b.amortization = Amortize(
			b.financedAmount,
			ParseAmount(in.FinanceRatePercent),
			ParseAmount(in.FinanceTermMonths),
			in.PaymentFrequency,
		)
	}
	return b
}

// Calculate derives every worksheet total from the inputs. Cash deals carry
// no financing, so their financed amount, payment and interest stay zero.
func Calculate(in entities.WorksheetInput, dealType entities.DealType) entities.WorksheetTotals {
	b := compute(in, dealType)
	return entities.WorksheetTotals{
		Subtotal:        Round2(b.subtotal),
		NetDifference:   Round2(b.netDifference),
		TradeEquity:     Round2(b.tradeEquity),
		TaxRate:         b.taxRate,
		ComputedTax:     Round2(b.computedTax),
		TotalTax:        Round2(b.totalTax),
		TotalBalanceDue: Round2(b.totalBalanceDue),
		FinancedAmount:  Round2(b.financedAmount),
		Periods:         b.amortization.Periods,
		PeriodicRate:    b.amortization.PeriodicRate,
		Payment:         Round2(b.amortization.Payment),
		FinanceInterest: Round2(b.amortization.Interest),
	}
}
