package webhooks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dealer_backoffice/internal/config"
	"dealer_backoffice/internal/domain/envelope"
	"dealer_backoffice/internal/infrastructure/logger"
	"dealer_backoffice/internal/infrastructure/metrics"
	"dealer_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const maxResponseBytes = 4 << 20

// Client posts JSON payloads to the workflow webhooks.
type Client struct {
	urls    map[interfaces.WebhookEndpoint]string
	http    *http.Client
	metrics *metrics.WebhookMetrics
	log     *zap.Logger
}

var _ interfaces.IWebhookClient = (*Client)(nil)

func NewClient(cfg config.WebhookConfig, timeout time.Duration, m *metrics.WebhookMetrics, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		urls: map[interfaces.WebhookEndpoint]string{
			interfaces.WebhookCost:      cfg.CostURL,
			interfaces.WebhookPurchase:  cfg.PurchaseURL,
			interfaces.WebhookWorksheet: cfg.WorksheetURL,
			interfaces.WebhookDelivery:  cfg.DeliveryURL,
			interfaces.WebhookVIN:       cfg.VINURL,
			interfaces.WebhookOCR:       cfg.OCRURL,
			interfaces.WebhookImage:     cfg.ImageURL,
		},
		http:    &http.Client{Timeout: timeout},
		metrics: m,
		log:     log.Named("webhook.client"),
	}
}

func (c *Client) Save(ctx context.Context, endpoint interfaces.WebhookEndpoint, payload interface{}) (envelope.Ack, error) {
	start := time.Now()
	status, body, err := c.post(ctx, endpoint, payload)
	if err != nil {
		c.observe(ctx, endpoint, outcomeOf(err), start, err)
		return envelope.Ack{}, err
	}

	ack, err := envelope.ParseAck(status, body)
	c.observe(ctx, endpoint, outcomeOf(err), start, err)
	return ack, err
}

func (c *Client) Fetch(ctx context.Context, endpoint interfaces.WebhookEndpoint, payload interface{}) (envelope.Resolved, error) {
	start := time.Now()
	status, body, err := c.post(ctx, endpoint, payload)
	if err != nil {
		c.observe(ctx, endpoint, outcomeOf(err), start, err)
		return envelope.Resolved{}, err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		err = fmt.Errorf("%w: %d", envelope.ErrWebhookStatus, status)
		c.observe(ctx, endpoint, outcomeOf(err), start, err)
		return envelope.Resolved{}, err
	}

	res, err := envelope.Resolve(body)
	c.observe(ctx, endpoint, outcomeOf(err), start, err)
	return res, err
}

func (c *Client) post(ctx context.Context, endpoint interfaces.WebhookEndpoint, payload interface{}) (int, []byte, error) {
	url := strings.TrimSpace(c.urls[endpoint])
	if url == "" {
		return 0, nil, fmt.Errorf("%w: %s", interfaces.ErrWebhookNotConfigured, endpoint)
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/plain")
	if id := logger.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(logger.RequestIDHeader, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: %w", interfaces.ErrWebhookUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: %w", interfaces.ErrWebhookUnavailable, endpoint, err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) observe(ctx context.Context, endpoint interfaces.WebhookEndpoint, outcome string, start time.Time, err error) {
	elapsed := time.Since(start)
	c.metrics.Observe(string(endpoint), outcome, elapsed)

	log := logger.WithContext(ctx, c.log).With(
		zap.String("endpoint", string(endpoint)),
		zap.String("outcome", outcome),
		zap.Duration("elapsed", elapsed),
	)
	if err != nil {
		log.Warn("webhook call failed", zap.Error(err))
		return
	}
	log.Debug("webhook call done")
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return metrics.OutcomeTimeout
	case errors.Is(err, interfaces.ErrWebhookUnavailable), errors.Is(err, interfaces.ErrWebhookNotConfigured):
		return metrics.OutcomeNetwork
	case errors.Is(err, envelope.ErrWebhookStatus):
		return metrics.OutcomeHTTP
	case errors.Is(err, envelope.ErrWebhookRejected):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeBadBody
	}
}
