package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.mercadopago.com"

// Client talks to the Mercado Pago REST API: preference creation for the
// hosted checkout and payment lookups for webhook reconciliation.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func NewClient(accessToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type PreferenceItem struct {
	Title      string          `json:"title"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	PictureURL string          `json:"picture_url,omitempty"`
}

type PreferencePayer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PreferenceBackURLs struct {
	Success string `json:"success,omitempty"`
	Pending string `json:"pending,omitempty"`
	Failure string `json:"failure,omitempty"`
}

// PreferenceRequest describes a hosted-checkout session. ExternalReference
// carries the order id; it is the join key the webhook uses later.
type PreferenceRequest struct {
	Items             []PreferenceItem   `json:"items"`
	Payer             PreferencePayer    `json:"payer"`
	ExternalReference string             `json:"external_reference"`
	BackURLs          PreferenceBackURLs `json:"back_urls"`
	NotificationURL   string             `json:"notification_url,omitempty"`
}

type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// Payment is the gateway's ground-truth payment resource.
type Payment struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail"`
	ExternalReference string `json:"external_reference"`
	PaymentMethodID   string `json:"payment_method_id"`
	DateLastUpdated   string `json:"date_last_updated"`
}

// LastUpdated parses the gateway's RFC3339 last-updated instant in unix
// millis. Zero when absent or unparseable.
func (p Payment) LastUpdated() int64 {
	if p.DateLastUpdated == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, p.DateLastUpdated)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (Preference, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Preference{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return Preference{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Preference{}, fmt.Errorf("create preference: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Preference{}, apiError("create preference", resp)
	}

	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return Preference{}, fmt.Errorf("create preference: decode: %w", err)
	}
	return pref, nil
}

// GetPayment re-fetches the payment by id. Webhook handling never trusts the
// callback payload's status; this is the ground truth.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (Payment, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/payments/"+paymentID, nil)
	if err != nil {
		return Payment{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Payment{}, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Payment{}, apiError("get payment "+paymentID, resp)
	}

	var p Payment
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Payment{}, fmt.Errorf("get payment %s: decode: %w", paymentID, err)
	}
	return p, nil
}

func apiError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("%s: gateway returned %d: %s", op, resp.StatusCode, string(raw))
}
