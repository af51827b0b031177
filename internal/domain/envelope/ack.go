package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const doneSentinel = "done"

var (
	ErrWebhookStatus         = errors.New("webhook returned non-success status")
	ErrWebhookRejected       = errors.New("webhook rejected the request")
	ErrWebhookUnexpectedBody = errors.New("webhook returned an unexpected body")
)

// Ack is a successful webhook acknowledgement.
type Ack struct {
	// Legacy is true when the webhook answered with the plain "done" text.
	Legacy  bool
	Message string
}

// ParseAck decides whether a save-type webhook accepted the request.
//
// A non-2xx status always fails. Otherwise the raw body must be the text
// "done" (any case, surrounding whitespace ignored) or a structured
// {"status":"ok"|"error","message":...} object, possibly inside the usual
// wrappers. A "done" that is quoted or wrapped is not an acknowledgement.
func ParseAck(status int, body []byte) (Ack, error) {
	if status < 200 || status > 299 {
		return Ack{}, fmt.Errorf("%w: %d", ErrWebhookStatus, status)
	}

	trimmed := bytes.TrimSpace(body)
	if strings.EqualFold(string(trimmed), doneSentinel) {
		return Ack{Legacy: true}, nil
	}

	var v interface{}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return Ack{}, fmt.Errorf("%w: %q", ErrWebhookUnexpectedBody, truncate(string(trimmed), 120))
	}

	if t, ok := Unwrap(v).(map[string]interface{}); ok {
		msg := String(t, "message")
		switch strings.ToLower(String(t, "status")) {
		case "ok":
			return Ack{Message: msg}, nil
		case "error":
			if msg == "" {
				return Ack{}, ErrWebhookRejected
			}
			return Ack{}, fmt.Errorf("%w: %s", ErrWebhookRejected, msg)
		}
	}
	return Ack{}, fmt.Errorf("%w: %q", ErrWebhookUnexpectedBody, truncate(string(trimmed), 120))
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
