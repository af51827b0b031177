package entities

import "time"

// DealStatus represents the lifecycle of a deal.
//
// Domain notes:
//   - A deal starts as a draft while the sub-forms are being filled in.
//   - Submitting hands it to the back office; delivery closes it.
//   - Cancel is allowed from draft or submitted.
type DealStatus string

const (
	DealStatusDraft     DealStatus = "draft"
	DealStatusSubmitted DealStatus = "submitted"
	DealStatusDelivered DealStatus = "delivered"
	DealStatusCancelled DealStatus = "cancelled"
)

type DealType string

const (
	DealTypeCash    DealType = "cash"
	DealTypeFinance DealType = "finance"
)

func ParseDealType(s string) (DealType, bool) {
	switch DealType(s) {
	case DealTypeCash, DealTypeFinance:
		return DealType(s), true
	}
	return "", false
}

// DealCustomer is the customer sub-form snapshot stored on the deal.
type DealCustomer struct {
	CustomerID    string `json:"customer_id,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	Province      string `json:"province,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
}

// DealVehicle is the vehicle sub-form snapshot stored on the deal.
type DealVehicle struct {
	StockNumber string `json:"stock_number,omitempty"`
	VIN         string `json:"vin,omitempty"`
	Year        int    `json:"year,omitempty"`
	Make        string `json:"make,omitempty"`
	Model       string `json:"model,omitempty"`
	Trim        string `json:"trim,omitempty"`
	Color       string `json:"color,omitempty"`
	Odometer    int    `json:"odometer,omitempty"`
}

// TradeIn is a customer-owned vehicle offered as partial payment. Its values
// (trade value, actual cash value, lien payout) live on the worksheet.
type TradeIn struct {
	VIN        string `json:"vin,omitempty"`
	Year       int    `json:"year,omitempty"`
	Make       string `json:"make,omitempty"`
	Model      string `json:"model,omitempty"`
	Odometer   int    `json:"odometer,omitempty"`
	LienHolder string `json:"lien_holder,omitempty"`
}

type Disclosure struct {
	PreviouslyDamaged bool   `json:"previously_damaged"`
	DamageAmount      string `json:"damage_amount,omitempty"`
	OutOfProvince     bool   `json:"out_of_province"`
	DailyRental       bool   `json:"daily_rental"`
	Notes             string `json:"notes,omitempty"`
}

type Delivery struct {
	DeliveryDate string `json:"delivery_date,omitempty"`
	Salesperson  string `json:"salesperson,omitempty"`
	PlateNumber  string `json:"plate_number,omitempty"`
	Odometer     int    `json:"odometer,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Deal is a single vehicle sale transaction persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (stock_number-index): stock_number
//
// Version is bumped on every write and used for conditional puts.
type Deal struct {
	ID          string     `json:"id"`
	StockNumber string     `json:"stock_number"`
	Type        DealType   `json:"type"`
	Status      DealStatus `json:"status"`

	Customer   DealCustomer     `json:"customer"`
	Vehicle    DealVehicle      `json:"vehicle"`
	Trade      TradeIn          `json:"trade"`
	Worksheet  WorksheetInput   `json:"worksheet"`
	Totals     *WorksheetTotals `json:"totals,omitempty"`
	Disclosure Disclosure       `json:"disclosure"`
	Delivery   Delivery         `json:"delivery"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
