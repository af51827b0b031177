package worksheet

import (
	"math"

	"dealer_backoffice/internal/domain/entities"
)

// maxTermMonths caps the term so the period count always fits an int.
const maxTermMonths = 1200

// Amortization is a fixed-rate loan schedule summary at full precision.
type Amortization struct {
	Periods      int
	PeriodicRate float64
	Payment      float64
	Interest     float64
}

// Amortize applies the annuity formula to principal over termMonths at an
// annual percentage rate, paid at the given frequency.
//
// The number of payments is never below 1 and the term never exceeds
// maxTermMonths. A zero (or negative) rate splits the principal evenly.
func Amortize(principal, annualRatePercent, termMonths float64, freq entities.PaymentFrequency) Amortization {
	perYear := float64(PeriodsPerYear(freq))

	if math.IsNaN(termMonths) {
		termMonths = 0
	}
	termMonths = math.Max(0, math.Min(termMonths, maxTermMonths))
	n := int(math.Round(termMonths / 12 * perYear))
	if n < 1 {
		n = 1
	}

	r := annualRatePercent / 100 / perYear
	if r < 0 {
		r = 0
	}

	var payment float64
	if r > 0 {
		payment = principal * r / (1 - math.Pow(1+r, -float64(n)))
	} else {
		payment = principal / float64(n)
	}

	return Amortization{
		Periods:      n,
		PeriodicRate: r,
		Payment:      payment,
		Interest:     math.Max(0, payment*float64(n)-principal),
	}
}
