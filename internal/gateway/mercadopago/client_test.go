package mercadopago

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePreference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req PreferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "42", req.ExternalReference)
		assert.Len(t, req.Items, 1)
		assert.Equal(t, "iPhone 15 negro", req.Items[0].Title)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Preference{
			ID:               "pref-1",
			InitPoint:        "https://mp/init",
			SandboxInitPoint: "https://mp/sandbox",
		})
	}))
	defer srv.Close()

	c := NewClient("test-token", WithBaseURL(srv.URL))

	pref, err := c.CreatePreference(context.Background(), PreferenceRequest{
		Items: []PreferenceItem{
			{Title: "iPhone 15 negro", Quantity: 1, UnitPrice: decimal.NewFromInt(1000)},
		},
		Payer:             PreferencePayer{Name: "Ana", Email: "ana@example.com"},
		ExternalReference: "42",
	})

	require.NoError(t, err)
	assert.Equal(t, "pref-1", pref.ID)
	assert.Equal(t, "https://mp/init", pref.InitPoint)
}

func TestCreatePreference_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid access token"}`))
	}))
	defer srv.Close()

	c := NewClient("bad-token", WithBaseURL(srv.URL))

	_, err := c.CreatePreference(context.Background(), PreferenceRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid access token")
}

func TestGetPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/payments/123456", r.URL.Path)

		json.NewEncoder(w).Encode(Payment{
			ID:                123456,
			Status:            "approved",
			ExternalReference: "42",
			PaymentMethodID:   "visa",
			DateLastUpdated:   "2026-03-10T12:00:00.000-03:00",
		})
	}))
	defer srv.Close()

	c := NewClient("test-token", WithBaseURL(srv.URL))

	p, err := c.GetPayment(context.Background(), "123456")

	require.NoError(t, err)
	assert.Equal(t, int64(123456), p.ID)
	assert.Equal(t, "approved", p.Status)
	assert.Equal(t, "42", p.ExternalReference)
	assert.Positive(t, p.LastUpdated())
}

func TestPayment_LastUpdated(t *testing.T) {
	assert.Zero(t, Payment{}.LastUpdated())
	assert.Zero(t, Payment{DateLastUpdated: "not a date"}.LastUpdated())

	p := Payment{DateLastUpdated: "2026-03-10T12:00:00.000-03:00"}
	assert.Equal(t, int64(1773154800000), p.LastUpdated())
}
