package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"dealer_backoffice/internal/domain/envelope"
	"dealer_backoffice/internal/usecase/interfaces"
	"dealer_backoffice/pkg"
)

// mapWebhookError maps failures of the outbound workflow webhooks. It
// returns nil when err did not come from a webhook call.
func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrWebhookNotConfigured):
		return pkg.NewDomainErrorSimple("WEBHOOK_NOT_CONFIGURED", "Workflow webhook not configured", http.StatusServiceUnavailable)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainErrorSimple("WEBHOOK_TIMEOUT", "Workflow webhook timed out", http.StatusGatewayTimeout)
	case errors.Is(err, interfaces.ErrWebhookUnavailable):
		return pkg.NewDomainErrorSimple("WEBHOOK_UNAVAILABLE", "Workflow webhook unavailable", http.StatusBadGateway)
	case errors.Is(err, envelope.ErrWebhookStatus):
		return pkg.NewDomainErrorSimple("WEBHOOK_FAILED", "Workflow webhook returned an error status", http.StatusBadGateway)
	case errors.Is(err, envelope.ErrWebhookRejected):
		msg := "Workflow webhook rejected the request"
		if detail := rejectionDetail(err); detail != "" {
			msg += ": " + detail
		}
		return pkg.NewDomainErrorSimple("WEBHOOK_REJECTED", msg, http.StatusUnprocessableEntity)
	case errors.Is(err, envelope.ErrWebhookUnexpectedBody):
		return pkg.NewDomainErrorSimple("WEBHOOK_UNEXPECTED_RESPONSE", "Workflow webhook returned an unexpected response", http.StatusBadGateway)
	}
	return nil
}

// rejectionDetail is the message the webhook sent along with status "error".
func rejectionDetail(err error) string {
	prefix := envelope.ErrWebhookRejected.Error() + ": "
	s := err.Error()
	if i := strings.Index(s, prefix); i >= 0 {
		return strings.TrimSpace(s[i+len(prefix):])
	}
	return ""
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}
