package gymapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/LeHPhuc/GymApp/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// ErrUnauthenticated is returned when the upstream API rejects the
// bearer token. Callers surface it as "must log in", never as a
// transport failure.
var ErrUnauthenticated = errors.New("unauthenticated")

const (
	subscriptionsPath = "/subscriptions/my/"
	sessionsPath      = "/workout-sessions/me/registered-sessions/"
	progressPath      = "/training-progress/my-progress/"
	paymentsPath      = "/payments/create/"
)

// Client talks to the upstream gym API on behalf of the logged-in
// member. It holds no state between calls; every fetch re-reads the
// source of truth.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Subscriptions returns all of the member's subscription records,
// active or not. The upstream endpoint is paginated; only the results
// list is of interest here.
func (c *Client) Subscriptions(ctx context.Context, token string) (_ []SubscriptionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gymapi.subscriptions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respBytes, err := c.get(ctx, subscriptionsPath, token)
	if err != nil {
		return nil, err
	}

	var resp subscriptionsResponse
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal subscriptions response: %w", err)
	}

	span.SetAttributes(attribute.Int("subscriptions.count", len(resp.Results)))
	return resp.Results, nil
}

// RegisteredSessions returns the member's registered workout sessions.
func (c *Client) RegisteredSessions(ctx context.Context, token string) (_ []SessionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gymapi.registeredSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respBytes, err := c.get(ctx, sessionsPath, token)
	if err != nil {
		return nil, err
	}

	var sessions []SessionRecord
	if err := json.Unmarshal(respBytes, &sessions); err != nil {
		return nil, fmt.Errorf("unmarshal sessions response: %w", err)
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}

// ProgressRecords returns the member's training progress history. A
// non-array payload means "no progress recorded yet" and yields an
// empty list, not an error.
func (c *Client) ProgressRecords(ctx context.Context, token string) (_ []ProgressRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gymapi.progressRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	respBytes, err := c.get(ctx, progressPath, token)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(respBytes)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		log.Debugf("progress records: non-array payload, treating as empty history")
		span.SetAttributes(attribute.Bool("progress.non_array_payload", true))
		return nil, nil
	}

	var rawRecords []json.RawMessage
	if err := json.Unmarshal(trimmed, &rawRecords); err != nil {
		return nil, fmt.Errorf("unmarshal progress response: %w", err)
	}

	records := make([]ProgressRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		var record ProgressRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("unmarshal progress record: %w", err)
		}
		record.Raw = raw
		records = append(records, record)
	}

	span.SetAttributes(attribute.Int("progress.count", len(records)))
	return records, nil
}

// CreatePayment forwards a payment method selection upstream and
// returns the gateway response verbatim (payment URL etc).
func (c *Client) CreatePayment(ctx context.Context, token string, payment PaymentRequest) (_ json.RawMessage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "gymapi.createPayment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("payment.method", payment.PaymentMethod))

	reqBytes, err := json.Marshal(payment)
	if err != nil {
		return nil, fmt.Errorf("marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentsPath, bytes.NewReader(reqBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read payment response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return respBytes, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthenticated
	default:
		log.Errorf("create payment: unexpected status %d: %s", resp.StatusCode, respBytes)
		return nil, fmt.Errorf("create payment: unexpected status %d", resp.StatusCode)
	}
}

func (c *Client) get(ctx context.Context, path, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	log.Debugf("gym api: GET %s", c.baseURL+path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response bytes: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return respBytes, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthenticated
	default:
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}
}
