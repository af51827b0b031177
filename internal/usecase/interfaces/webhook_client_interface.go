package interfaces

import (
	"context"
	"errors"

	"dealer_backoffice/internal/domain/envelope"
)

// WebhookEndpoint names one of the workflow webhooks.
type WebhookEndpoint string

const (
	WebhookCost      WebhookEndpoint = "cost"
	WebhookPurchase  WebhookEndpoint = "purchase"
	WebhookWorksheet WebhookEndpoint = "worksheet"
	WebhookDelivery  WebhookEndpoint = "delivery"
	WebhookVIN       WebhookEndpoint = "vin"
	WebhookOCR       WebhookEndpoint = "ocr"
	WebhookImage     WebhookEndpoint = "image"
)

var (
	ErrWebhookNotConfigured = errors.New("webhook not configured")
	ErrWebhookUnavailable   = errors.New("webhook unavailable")
)

// IWebhookClient posts JSON to the workflow webhooks.
//
// Save is for endpoints that only acknowledge; it fails unless the response is
// an acknowledgement (see envelope.ParseAck). Fetch is for endpoints that
// return data and resolves the response envelope.
type IWebhookClient interface {
	Save(ctx context.Context, endpoint WebhookEndpoint, payload interface{}) (envelope.Ack, error)
	Fetch(ctx context.Context, endpoint WebhookEndpoint, payload interface{}) (envelope.Resolved, error)
}
