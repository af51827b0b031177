package response

import "dealer_backoffice/internal/domain/entities"

// VehicleSearchItem is the compact row returned by the search-as-you-type
// endpoint.
type VehicleSearchItem struct {
	StockNumber string  `json:"stock_number"`
	VIN         string  `json:"vin"`
	Year        int     `json:"year"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Trim        string  `json:"trim"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Label       string  `json:"label"`
}

func FromVehicleSearch(vehicles []entities.Vehicle) []VehicleSearchItem {
	out := make([]VehicleSearchItem, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, VehicleSearchItem{
			StockNumber: v.StockNumber,
			VIN:         v.VIN,
			Year:        v.Year,
			Make:        v.Make,
			Model:       v.Model,
			Trim:        v.Trim,
			Price:       v.Price,
			Status:      v.Status,
			Label:       vehicleLabel(v),
		})
	}
	return out
}

func vehicleLabel(v entities.Vehicle) string {
	label := v.StockNumber
	for _, part := range []string{yearString(v.Year), v.Make, v.Model} {
		if part != "" {
			label += " " + part
		}
	}
	return label
}

type CostListResponse struct {
	StockNumber string              `json:"stock_number"`
	Costs       []entities.CostLine `json:"costs"`
	Total       float64             `json:"total"`
}

func FromCosts(stockNumber string, costs []entities.CostLine) CostListResponse {
	if costs == nil {
		costs = []entities.CostLine{}
	}
	total := 0.0
	for _, c := range costs {
		total += c.Amount
	}
	return CostListResponse{StockNumber: stockNumber, Costs: costs, Total: roundCents(total)}
}

type FileListResponse struct {
	StockNumber string                `json:"stock_number"`
	Files       []entities.FileRecord `json:"files"`
}

func FromFiles(stockNumber string, files []entities.FileRecord) FileListResponse {
	if files == nil {
		files = []entities.FileRecord{}
	}
	return FileListResponse{StockNumber: stockNumber, Files: files}
}
