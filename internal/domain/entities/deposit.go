package entities

import (
	"encoding/json"
	"time"
)

// DepositStatus represents the outcome of a deposit charge.
type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusDenied   DepositStatus = "denied"
)

// Deposit is a customer deposit taken against a deal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (deal_id-index): deal_id
//
// ProviderPayloadRaw keeps the gateway response body for traceability;
// ProviderPayload is the parsed form when it decodes as an object.
type Deposit struct {
	ID     string        `json:"id"`
	DealID string        `json:"deal_id"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Status DepositStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
