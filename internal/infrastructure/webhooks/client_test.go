package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealer_backoffice/internal/config"
	"dealer_backoffice/internal/domain/envelope"
	"dealer_backoffice/internal/infrastructure/logger"
	"dealer_backoffice/internal/infrastructure/metrics"
	"dealer_backoffice/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *prometheus.Registry) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	reg := prometheus.NewRegistry()
	cfg := config.WebhookConfig{
		WorksheetURL: srv.URL + "/worksheet",
		VINURL:       srv.URL + "/vin",
	}
	return NewClient(cfg, 2*time.Second, metrics.NewWebhookMetrics(reg), zap.NewNop()), reg
}

func TestClient_SaveDone(t *testing.T) {
	var gotBody map[string]interface{}
	var gotRequestID string
	c, reg := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/worksheet" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotRequestID = r.Header.Get(logger.RequestIDHeader)
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		_, _ = w.Write([]byte(" Done \n"))
	})

	ctx := logger.WithRequestID(context.Background(), "req-9")
	ack, err := c.Save(ctx, interfaces.WebhookWorksheet, map[string]string{"deal_id": "d-1"})
	require.NoError(t, err)
	assert.True(t, ack.Legacy)
	assert.Equal(t, "d-1", gotBody["deal_id"])
	assert.Equal(t, "req-9", gotRequestID)

	n, err := testutil.GatherAndCount(reg, "webhook_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClient_SaveFailures(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("done"))
		})
		_, err := c.Save(context.Background(), interfaces.WebhookWorksheet, nil)
		assert.ErrorIs(t, err, envelope.ErrWebhookStatus)
	})

	t.Run("unexpected body", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"saved":true}`))
		})
		_, err := c.Save(context.Background(), interfaces.WebhookWorksheet, nil)
		assert.ErrorIs(t, err, envelope.ErrWebhookUnexpectedBody)
	})

	t.Run("not configured", func(t *testing.T) {
		c, _ := newTestClient(t, func(http.ResponseWriter, *http.Request) {})
		_, err := c.Save(context.Background(), interfaces.WebhookDelivery, nil)
		assert.ErrorIs(t, err, interfaces.ErrWebhookNotConfigured)
	})

	t.Run("cancelled context", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Save(ctx, interfaces.WebhookWorksheet, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, interfaces.ErrWebhookUnavailable))
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestClient_Fetch(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"json":{"make":"Honda","year":"2019"}}]`))
	})

	res, err := c.Fetch(context.Background(), interfaces.WebhookVIN, map[string]string{"vin": "1HGCM82633A004352"})
	require.NoError(t, err)
	assert.Equal(t, "Honda", res.Payload["make"])
	assert.Equal(t, []envelope.Shape{envelope.ShapeArray, envelope.ShapeJSON}, res.Shapes)
}

func TestClient_FetchErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
		_, err := c.Fetch(context.Background(), interfaces.WebhookVIN, nil)
		assert.ErrorIs(t, err, envelope.ErrEmptyEnvelope)
	})

	t.Run("bad shape", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`"done"`))
		})
		_, err := c.Fetch(context.Background(), interfaces.WebhookVIN, nil)
		assert.ErrorIs(t, err, envelope.ErrUnrecognizedEnvelope)
	})

	t.Run("status", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := c.Fetch(context.Background(), interfaces.WebhookVIN, nil)
		assert.ErrorIs(t, err, envelope.ErrWebhookStatus)
	})
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, metrics.OutcomeSuccess, outcomeOf(nil))
	assert.Equal(t, metrics.OutcomeHTTP, outcomeOf(envelope.ErrWebhookStatus))
	assert.Equal(t, metrics.OutcomeRejected, outcomeOf(envelope.ErrWebhookRejected))
	assert.Equal(t, metrics.OutcomeBadBody, outcomeOf(envelope.ErrUnrecognizedEnvelope))
	assert.Equal(t, metrics.OutcomeTimeout, outcomeOf(context.DeadlineExceeded))
	assert.Equal(t, metrics.OutcomeNetwork, outcomeOf(interfaces.ErrWebhookNotConfigured))
}
