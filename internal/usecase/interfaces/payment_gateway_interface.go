package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the payment provider used for deal deposits
// (Mercado Pago).
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
