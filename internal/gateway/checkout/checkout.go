package checkout

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sakibulla/AS-11-Server/pkg/clients"
	"go.uber.org/zap"
)

// Client talks to the hosted-checkout payment gateway. Session creation and
// retrieval are bounded by the HTTP client timeout; a failed or timed-out
// call never mutates local state.

const (
	sessionsPath       = "/v1/checkout/sessions"
	signatureHeaderKey = "t"
	signatureSchemeV1  = "v1"
	signatureTolerance = 5 * time.Minute

	// EventCheckoutCompleted is the only event type the service reacts to.
	EventCheckoutCompleted = "checkout.session.completed"

	// SessionPaid is the gateway-side payment_status of a settled session.
	SessionPaid = "paid"
)

var (
	ErrUpstreamGateway       = errors.New("checkout gateway unavailable")
	ErrSignatureVerification = errors.New("webhook signature verification failed")
)

type Session struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	PaymentIntent string            `json:"payment_intent"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// Session decodes the event payload as a checkout session.
func (e *Event) Session() (*Session, error) {
	var s Session
	if err := json.Unmarshal(e.Data.Object, &s); err != nil {
		return nil, fmt.Errorf("can't decode event object: %w", err)
	}
	return &s, nil
}

type CreateSessionParams struct {
	AmountCents   int64
	Currency      string
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

type Client struct {
	address       string
	secretKey     string
	webhookSecret string
	client        clients.HTTPClientI
	now           func() time.Time
}

func New(address, secretKey, webhookSecret string, client clients.HTTPClientI) *Client {
	return &Client{
		address:       address,
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
		client:        client,
		now:           time.Now,
	}
}

func (c *Client) CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", params.Currency)
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.AmountCents, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("customer_email", params.CustomerEmail)
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	for k, v := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address+sessionsPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.doSession(req)
}

func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.address+sessionsPath+"/"+url.PathEscape(sessionID), http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.doSession(req)
}

func (c *Client) doSession(req *http.Request) (*Session, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("gateway request failed", zap.String("url", req.URL.Path), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUpstreamGateway, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamGateway, err)
	}
	if resp.StatusCode != http.StatusOK {
		zap.L().Error("gateway returned unexpected status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamGateway, resp.StatusCode)
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("%w: can't decode session: %w", ErrUpstreamGateway, err)
	}
	return &session, nil
}

// ConstructEvent verifies the signature header against the webhook secret
// and decodes the event. Signature scheme: header carries t=<unix>,v1=<hex>,
// the signed payload is "<t>.<body>" under HMAC-SHA256.
func (c *Client) ConstructEvent(payload []byte, sigHeader string) (*Event, error) {
	timestamp, signatures, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return nil, err
	}

	if c.now().Sub(time.Unix(timestamp, 0)) > signatureTolerance {
		return nil, fmt.Errorf("%w: timestamp outside tolerance", ErrSignatureVerification)
	}

	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	verified := false
	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			verified = true
			break
		}
	}
	if !verified {
		return nil, ErrSignatureVerification
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("can't decode webhook event: %w", err)
	}
	return &event, nil
}

func parseSignatureHeader(header string) (int64, []string, error) {
	if header == "" {
		return 0, nil, fmt.Errorf("%w: missing signature header", ErrSignatureVerification)
	}

	var timestamp int64 = -1
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case signatureHeaderKey:
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: malformed timestamp", ErrSignatureVerification)
			}
			timestamp = ts
		case signatureSchemeV1:
			signatures = append(signatures, kv[1])
		}
	}

	if timestamp < 0 || len(signatures) == 0 {
		return 0, nil, fmt.Errorf("%w: malformed signature header", ErrSignatureVerification)
	}
	return timestamp, signatures, nil
}
