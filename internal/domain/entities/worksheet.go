package entities

// TaxCode is the sales tax applied to a deal.
type TaxCode string

const (
	TaxCodeHST    TaxCode = "HST"
	TaxCodeRST    TaxCode = "RST"
	TaxCodeGST    TaxCode = "GST"
	TaxCodePST    TaxCode = "PST"
	TaxCodeQST    TaxCode = "QST"
	TaxCodeExempt TaxCode = "Exempt"
)

type PaymentFrequency string

const (
	PaymentFrequencyWeekly      PaymentFrequency = "Weekly"
	PaymentFrequencyBiWeekly    PaymentFrequency = "Bi-Weekly"
	PaymentFrequencySemiMonthly PaymentFrequency = "Semi-Monthly"
	PaymentFrequencyMonthly     PaymentFrequency = "Monthly"
)

// WorksheetInput holds the user-editable worksheet fields exactly as typed.
//
// Amounts are decimal strings; anything unparsable counts as zero.
type WorksheetInput struct {
	PurchasePrice   string `json:"purchase_price"`
	Discount        string `json:"discount"`
	TradeValue      string `json:"trade_value"`
	ActualCashValue string `json:"actual_cash_value"`
	LienPayout      string `json:"lien_payout"`
	LicenseFee      string `json:"license_fee"`

	TaxCode     TaxCode `json:"tax_code"`
	TaxOverride bool    `json:"tax_override"`
	TaxManual   string  `json:"tax_manual"`

	FinanceRatePercent string           `json:"finance_rate_percent"`
	FinanceTermMonths  string           `json:"finance_term_months"`
	PaymentFrequency   PaymentFrequency `json:"payment_frequency"`
}

// WorksheetTotals are the derived worksheet fields, rounded to cents.
type WorksheetTotals struct {
	Subtotal        float64 `json:"subtotal"`
	NetDifference   float64 `json:"net_difference"`
	TradeEquity     float64 `json:"trade_equity"`
	TaxRate         float64 `json:"tax_rate"`
	ComputedTax     float64 `json:"computed_tax"`
	TotalTax        float64 `json:"total_tax"`
	TotalBalanceDue float64 `json:"total_balance_due"`

	FinancedAmount  float64 `json:"financed_amount"`
	Periods         int     `json:"periods"`
	PeriodicRate    float64 `json:"periodic_rate"`
	Payment         float64 `json:"payment"`
	FinanceInterest float64 `json:"finance_interest"`
}
