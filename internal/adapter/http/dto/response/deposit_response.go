package response

import (
	"time"

	"dealer_backoffice/internal/domain/entities"
)

type DepositResponse struct {
	DepositID   string    `json:"deposit_id"`
	ID          string    `json:"id"`
	DealID      string    `json:"deal_id"`
	Amount      float64   `json:"amount"`
	DepositDate time.Time `json:"deposit_date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDeposit(d entities.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:          d.ID,
		ID:                 d.ID,
		DealID:             d.DealID,
		Amount:             d.Amount,
		DepositDate:        d.Date,
		Status:             string(d.Status),
		ProviderPayloadRaw: string(d.ProviderPayloadRaw),
		ProviderPayload:    d.ProviderPayload,
	}
}

func FromDeposits(deposits []entities.Deposit) []DepositResponse {
	out := make([]DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		out = append(out, FromDeposit(d))
	}
	return out
}
