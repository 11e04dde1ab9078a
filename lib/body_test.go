package lib

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"salesledger_server/structs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSaleRequest(t *testing.T, body map[string]any) (*structs.SaleRequest, error) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest("POST", "/sales", bytes.NewReader(raw))
	return ExtractAndValidateBody[structs.SaleRequest](r)
}

func validSalePayload() map[string]any {
	return map[string]any{
		"product_id":    1,
		"quantity":      3,
		"sale_date":     time.Now().UTC().Format("2006-01-02"),
		"customer_name": "Jane Doe",
	}
}

func TestExtractAndValidateBody_ValidPayload(t *testing.T) {
	req, err := decodeSaleRequest(t, validSalePayload())
	require.NoError(t, err)

	assert.Equal(t, int64(1), req.ProductID)
	assert.Equal(t, 3, req.Quantity)
	assert.Equal(t, "Jane Doe", req.CustomerName)
	assert.Nil(t, req.Remarks)
}

func TestExtractAndValidateBody_RejectsInvalidFields(t *testing.T) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	cases := []struct {
		name     string
		mutate   func(map[string]any)
		badField string
	}{
		{
			name:     "zero quantity",
			mutate:   func(p map[string]any) { p["quantity"] = 0 },
			badField: "quantity",
		},
		{
			name:     "negative product id",
			mutate:   func(p map[string]any) { p["product_id"] = -1 },
			badField: "product_id",
		},
		{
			name:     "sale date one day in the future",
			mutate:   func(p map[string]any) { p["sale_date"] = tomorrow },
			badField: "sale_date",
		},
		{
			name:     "empty customer name",
			mutate:   func(p map[string]any) { p["customer_name"] = "" },
			badField: "customer_name",
		},
		{
			name:     "customer name over 100 characters",
			mutate:   func(p map[string]any) { p["customer_name"] = strings.Repeat("a", 101) },
			badField: "customer_name",
		},
		{
			name:     "remarks of length 256",
			mutate:   func(p map[string]any) { p["remarks"] = strings.Repeat("r", 256) },
			badField: "remarks",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validSalePayload()
			tc.mutate(payload)

			req, err := decodeSaleRequest(t, payload)
			assert.Nil(t, req)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)

			fields := make([]string, 0, len(ve.Errors))
			for _, fe := range ve.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tc.badField, "expected the offending field to be named")
		})
	}
}

func TestExtractAndValidateBody_AcceptsBoundaryLengths(t *testing.T) {
	payload := validSalePayload()
	payload["customer_name"] = strings.Repeat("a", 100)
	payload["remarks"] = strings.Repeat("r", 255)

	req, err := decodeSaleRequest(t, payload)
	require.NoError(t, err)
	require.NotNil(t, req.Remarks)
	assert.Len(t, *req.Remarks, 255)
}

func TestExtractAndValidateBody_AcceptsTodayAsSaleDate(t *testing.T) {
	_, err := decodeSaleRequest(t, validSalePayload())
	assert.NoError(t, err, "today must not count as a future date")
}

func TestExtractAndValidateBody_RejectsUnknownFields(t *testing.T) {
	payload := validSalePayload()
	payload["amount"] = 999.99 // amount is derived, never caller-settable

	req, err := decodeSaleRequest(t, payload)
	assert.Nil(t, req)
	assert.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "unknown fields are a decode error, not a field validation error")
}
