package request

import (
	"strings"

	"dealer_backoffice/internal/domain/entities"
)

type VehicleRequest struct {
	StockNumber  string  `json:"stock_number" binding:"required"`
	VIN          string  `json:"vin"`
	Year         int     `json:"year"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Trim         string  `json:"trim"`
	BodyStyle    string  `json:"body_style"`
	Drivetrain   string  `json:"drivetrain"`
	Engine       string  `json:"engine"`
	Fuel         string  `json:"fuel"`
	Transmission string  `json:"transmission"`
	Color        string  `json:"color"`
	Odometer     int     `json:"odometer"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		StockNumber:  strings.TrimSpace(r.StockNumber),
		VIN:          r.VIN,
		Year:         r.Year,
		Make:         r.Make,
		Model:        r.Model,
		Trim:         r.Trim,
		BodyStyle:    r.BodyStyle,
		Drivetrain:   r.Drivetrain,
		Engine:       r.Engine,
		Fuel:         r.Fuel,
		Transmission: r.Transmission,
		Color:        r.Color,
		Odometer:     r.Odometer,
		Price:        r.Price,
		Status:       r.Status,
		Notes:        r.Notes,
	}
}

type CostRequest struct {
	Description string  `json:"description" binding:"required"`
	Vendor      string  `json:"vendor"`
	Amount      float64 `json:"amount" binding:"required"`
	IncurredOn  string  `json:"incurred_on"`
}

func (r CostRequest) ToEntity(stockNumber string) entities.CostLine {
	return entities.CostLine{
		StockNumber: stockNumber,
		Description: r.Description,
		Vendor:      r.Vendor,
		Amount:      r.Amount,
		IncurredOn:  r.IncurredOn,
	}
}

type PurchaseRequest struct {
	PurchasedFrom string  `json:"purchased_from"`
	PurchaseDate  string  `json:"purchase_date"`
	PurchasePrice float64 `json:"purchase_price"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}

func (r PurchaseRequest) ToEntity(stockNumber string) entities.PurchaseRecord {
	return entities.PurchaseRecord{
		StockNumber:   stockNumber,
		PurchasedFrom: r.PurchasedFrom,
		PurchaseDate:  r.PurchaseDate,
		PurchasePrice: r.PurchasePrice,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
}

type WarrantyRequest struct {
	Provider   string  `json:"provider"`
	Plan       string  `json:"plan"`
	TermMonths int     `json:"term_months"`
	Kilometres int     `json:"kilometres"`
	Price      float64 `json:"price"`
	Deductible float64 `json:"deductible"`
}

func (r WarrantyRequest) ToEntity(stockNumber string) entities.WarrantyRecord {
	return entities.WarrantyRecord{
		StockNumber: stockNumber,
		Provider:    r.Provider,
		Plan:        r.Plan,
		TermMonths:  r.TermMonths,
		Kilometres:  r.Kilometres,
		Price:       r.Price,
		Deductible:  r.Deductible,
	}
}

type VINDecodeRequest struct {
	VIN string `json:"vin" binding:"required"`
}

type GenerateImagesRequest struct {
	Prompt string `json:"prompt"`
}
