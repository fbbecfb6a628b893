// Package teams delivers notification cards to a Microsoft Teams
// incoming-webhook URL. Exactly one POST per invocation; no retries.
package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opsnotify/teams-notify/internal/card"
	"github.com/opsnotify/teams-notify/internal/constants"
	notifyerrors "github.com/opsnotify/teams-notify/internal/errors"
)

// maxErrorBodyBytes caps how much of an error response body is read back
// into the failure message.
const maxErrorBodyBytes = 16 * 1024

// Doer performs a single HTTP request. It is satisfied by *http.Client and
// lets tests substitute the transport without a live network.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DeliveryError is returned when the webhook endpoint answers with a
// non-success HTTP status. The message format is part of the CLI contract.
type DeliveryError struct {
	// StatusCode is the HTTP status the endpoint returned.
	StatusCode int

	// Body is the response body text, verbatim.
	Body string
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("Failed to send notification. HTTP %d: %s", e.StatusCode, e.Body)
}

// Is reports a match against the ErrDeliveryFailed sentinel so callers can
// use errors.Is without losing the exact message.
func (e *DeliveryError) Is(target error) bool {
	return target == notifyerrors.ErrDeliveryFailed
}

// Client posts cards to a configured webhook URL.
type Client struct {
	webhookURL string
	doer       Doer
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the HTTP client used for delivery. Intended for tests.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

// NewClient creates a delivery client for the given webhook URL.
// The default HTTP client applies the standard single-attempt timeout.
func NewClient(webhookURL string, opts ...Option) *Client {
	c := &Client{
		webhookURL: webhookURL,
		doer:       &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send serializes the card and performs the single webhook POST.
//
// A 2xx response is success. Any other status fails with the status code and
// response body text. Transport errors propagate with the underlying error's
// message. The serialized document is traced at debug level before delivery.
func (c *Client) Send(ctx context.Context, msg *card.MessageCard) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return notifyerrors.Wrap(err, "failed to serialize card")
	}

	logger := zerolog.Ctx(ctx)
	requestID := uuid.NewString()
	logger.Debug().
		Str("request_id", requestID).
		RawJSON("card", body).
		Msg("sending notification")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return notifyerrors.Wrap(err, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.doer.Do(req)
	if err != nil {
		// Transport failure: the underlying error text is the message.
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &DeliveryError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	logger.Info().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("notification sent")
	return nil
}
