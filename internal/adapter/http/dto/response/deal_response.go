package response

import (
	"time"

	"dealer_backoffice/internal/domain/entities"
)

type DealResponse struct {
	ID          string `json:"id"`
	DealID      string `json:"deal_id"`
	StockNumber string `json:"stock_number"`
	Type        string `json:"type"`
	Status      string `json:"status"`

	Customer   entities.DealCustomer     `json:"customer"`
	Vehicle    entities.DealVehicle      `json:"vehicle"`
	Trade      entities.TradeIn          `json:"trade"`
	Worksheet  entities.WorksheetInput   `json:"worksheet"`
	Totals     *entities.WorksheetTotals `json:"totals,omitempty"`
	Disclosure entities.Disclosure       `json:"disclosure"`
	Delivery   entities.Delivery         `json:"delivery"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDeal(d entities.Deal) DealResponse {
	return DealResponse{
		ID:          d.ID,
		DealID:      d.ID,
		StockNumber: d.StockNumber,
		Type:        string(d.Type),
		Status:      string(d.Status),
		Customer:    d.Customer,
		Vehicle:     d.Vehicle,
		Trade:       d.Trade,
		Worksheet:   d.Worksheet,
		Totals:      d.Totals,
		Disclosure:  d.Disclosure,
		Delivery:    d.Delivery,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDeals(deals []entities.Deal) []DealResponse {
	out := make([]DealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, FromDeal(d))
	}
	return out
}

type WorksheetTotalsResponse struct {
	DealType string                   `json:"deal_type"`
	Totals   entities.WorksheetTotals `json:"totals"`
}
