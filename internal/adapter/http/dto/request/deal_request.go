package request

import "dealer_backoffice/internal/domain/entities"

// Every deal write accepts an optional version. Sending it turns the write
// into a conditional one; omitting it (or sending 0) keeps last-write-wins.

type CreateDealRequest struct {
	StockNumber string `json:"stock_number" binding:"required"`
	Type        string `json:"type" binding:"required"`
}

type VersionRequest struct {
	Version int64 `json:"version"`
}

type DealCustomerRequest struct {
	Version  int64                 `json:"version"`
	Customer entities.DealCustomer `json:"customer"`
}

type DealVehicleRequest struct {
	Version int64                `json:"version"`
	Vehicle entities.DealVehicle `json:"vehicle"`
}

type DealTradeRequest struct {
	Version int64            `json:"version"`
	Trade   entities.TradeIn `json:"trade"`
}

type DealDisclosureRequest struct {
	Version    int64               `json:"version"`
	Disclosure entities.Disclosure `json:"disclosure"`
}

type DealWorksheetRequest struct {
	Version   int64                   `json:"version"`
	Worksheet entities.WorksheetInput `json:"worksheet"`
}

type DealDeliveryRequest struct {
	Version  int64             `json:"version"`
	Delivery entities.Delivery `json:"delivery"`
}

// WorksheetCalculateRequest previews totals without touching any deal.
type WorksheetCalculateRequest struct {
	DealType  string                  `json:"deal_type"`
	Worksheet entities.WorksheetInput `json:"worksheet"`
}

// ResolveDealType treats anything but "finance" as a cash deal.
func (r WorksheetCalculateRequest) ResolveDealType() entities.DealType {
	if t, ok := entities.ParseDealType(normalize(r.DealType)); ok {
		return t
	}
	return entities.DealTypeCash
}
