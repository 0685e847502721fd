package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yseddiki/ohIPlay/internal/domain"
)

// Client talks to the payment gateway's checkout-session API. All calls are
// bounded by the configured timeout; a booking is never locked across one.
type Client struct {
	baseURL    string
	secretKey  string
	successURL string
	cancelURL  string
	httpClient *http.Client
}

type Config struct {
	BaseURL    string
	SecretKey  string
	SuccessURL string
	CancelURL  string
	Timeout    time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		secretKey:  cfg.SecretKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type createSessionRequest struct {
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	Description   string            `json:"description,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty"`
	SuccessURL    string            `json:"success_url"`
	CancelURL     string            `json:"cancel_url"`
	Metadata      map[string]string `json:"metadata"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	Status    string `json:"status"`
	PaymentID string `json:"payment_id,omitempty"`
}

func (c *Client) CreateSession(ctx context.Context, input domain.CreateSessionInput) (*domain.CheckoutSession, error) {
	body := createSessionRequest{
		Amount:        input.AmountCents,
		Currency:      input.Currency,
		Description:   input.Description,
		CustomerEmail: input.CustomerEmail,
		SuccessURL:    c.successURL,
		CancelURL:     c.cancelURL,
		Metadata:      input.Metadata,
	}

	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/sessions", body, &resp); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if resp.SessionID == "" || resp.URL == "" {
		return nil, fmt.Errorf("%w: incomplete session response", domain.ErrProviderUnavailable)
	}

	return &domain.CheckoutSession{
		SessionID:   resp.SessionID,
		RedirectURL: resp.URL,
	}, nil
}

func (c *Client) CheckSession(ctx context.Context, sessionID string) (*domain.SessionStatus, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/sessions/"+sessionID, nil, &resp); err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	return &domain.SessionStatus{
		SessionID: resp.SessionID,
		State:     domain.SessionState(resp.Status),
		PaymentID: resp.PaymentID,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode >= 500 {
			return fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, resp.StatusCode, raw)
		}
		return fmt.Errorf("gateway rejected request: status %d: %s", resp.StatusCode, raw)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
