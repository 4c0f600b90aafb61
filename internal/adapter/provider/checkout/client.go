// Package checkout talks to the external payment processor's hosted checkout
// API: create a session, retrieve a session by id. The processor echoes the
// metadata attached at creation back unmodified, which is what ties a session
// to the application it pays for.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/scholarstream/scholarstream-backend/internal/config"
	"github.com/scholarstream/scholarstream-backend/internal/domain"
)

const sessionsPath = "/v1/checkout/sessions"

// Client is an HTTP client for the payment processor.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a checkout client from PaymentConfig.
func NewClient(cfg config.PaymentConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.With("adapter", "checkout"),
	}
}

// Session is the processor's view of a checkout session.
type Session struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

// IsPaid reports whether the processor considers the session settled.
func (s *Session) IsPaid() bool { return s.PaymentStatus == "paid" }

// errorResponse is the processor's error envelope.
type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateSessionInput describes a hosted checkout session to create.
// AmountMinor is in the processor's minor currency unit (cents).
type CreateSessionInput struct {
	AmountMinor        int64
	Currency           string
	ProductName        string
	ProductDescription string
	CustomerEmail      string
	Metadata           map[string]string
	SuccessURL         string
	CancelURL          string
}

// CreateSession creates a hosted checkout session and returns it with the
// redirect URL populated.
func (c *Client) CreateSession(ctx context.Context, in CreateSessionInput) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("customer_email", in.CustomerEmail)
	form.Set("success_url", in.SuccessURL)
	form.Set("cancel_url", in.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", in.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(in.AmountMinor, 10))
	form.Set("line_items[0][price_data][product_data][name]", in.ProductName)
	if in.ProductDescription != "" {
		form.Set("line_items[0][price_data][product_data][description]", in.ProductDescription)
	}
	for k, v := range in.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	encoded := form.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sessionsPath, strings.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("checkout: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	// Reusable body so the retry can replay the request.
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encoded)), nil
	}

	session, err := c.doSession(ctx, req)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "session created",
		slog.String("session_id", session.ID),
		slog.Int64("amount_minor", in.AmountMinor),
	)
	return session, nil
}

// GetSession retrieves a session by id.
// Returns domain.ErrNotFound for an unknown session id.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, domain.NewValidationError("session_id", "is required")
	}

	reqURL := c.baseURL + sessionsPath + "/" + url.PathEscape(sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("checkout: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.doSession(ctx, req)
}

// doSession executes the request and decodes a Session from the response.
func (c *Client) doSession(ctx context.Context, req *http.Request) (*Session, error) {
	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "processor request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("checkout: request failed: %w", domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("checkout: read body: %w", domain.ErrUpstreamUnavailable)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("checkout: session: %w", domain.ErrNotFound)
	case resp.StatusCode >= 500:
		c.log.ErrorContext(ctx, "processor error", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("checkout: status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	default:
		var errResp errorResponse
		msg := "unexpected status"
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		c.log.ErrorContext(ctx, "processor rejected request",
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return nil, fmt.Errorf("checkout: %s (status %d)", msg, resp.StatusCode)
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("checkout: decode session: %w", err)
	}
	return &session, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "processor retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retryReq := req
	if req.GetBody != nil {
		body, gbErr := req.GetBody()
		if gbErr != nil {
			return resp, err
		}
		retryReq = req.Clone(ctx)
		retryReq.Body = body
	}

	return c.httpClient.Do(retryReq)
}
