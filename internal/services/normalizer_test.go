package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mapperpro/kwify-provisioner/internal/dto"
)

func TestExtractPurchaseNestedCustomerWinsOverLegacyFields(t *testing.T) {
	raw := map[string]any{
		"status": "approved",
		"customer": map[string]any{
			"email": "nested@example.com",
			"name":  "Nested Name",
			"phone": "+5511999990000",
		},
		"buyer_email": "legacy@example.com",
		"buyer_name":  "Legacy Name",
		"buyer_phone": "+5511888880000",
	}

	event := ExtractPurchase(raw)

	assert.Equal(t, "nested@example.com", event.Email)
	assert.Equal(t, "Nested Name", event.DisplayName)
	assert.Equal(t, "+5511999990000", event.Phone)
}

func TestExtractPurchaseLegacyFallbacks(t *testing.T) {
	raw := map[string]any{
		"status":       "paid",
		"buyer_email":  "legacy@example.com",
		"buyer_name":   "Legacy Name",
		"buyer_phone":  "+5511888880000",
		"product_name": "Curso Completo",
		"price":        "99.90",
		"id":           "txn_legacy",
	}

	event := ExtractPurchase(raw)

	assert.Equal(t, dto.PurchaseEvent{
		Email:         "legacy@example.com",
		DisplayName:   "Legacy Name",
		Phone:         "+5511888880000",
		ProductName:   "Curso Completo",
		Amount:        "99.90",
		TransactionID: "txn_legacy",
		Status:        "paid",
	}, event)
}

func TestExtractPurchaseResolutionOrder(t *testing.T) {
	raw := map[string]any{
		"status":         "approved",
		"product":        map[string]any{"name": "Nested Product"},
		"product_name":   "Flat Product",
		"amount":         "10.00",
		"price":          "20.00",
		"transaction_id": "txn_primary",
		"id":             "txn_fallback",
	}

	event := ExtractPurchase(raw)

	assert.Equal(t, "Nested Product", event.ProductName)
	assert.Equal(t, "10.00", event.Amount)
	assert.Equal(t, "txn_primary", event.TransactionID)
}

func TestExtractPurchaseDefaultDisplayName(t *testing.T) {
	raw := map[string]any{
		"status":      "approved",
		"buyer_email": "a@b.com",
	}

	event := ExtractPurchase(raw)

	assert.Equal(t, DefaultDisplayName, event.DisplayName)
}

func TestExtractPurchaseMissingEmail(t *testing.T) {
	raw := map[string]any{
		"status": "approved",
		"customer": map[string]any{
			"name": "No Email",
		},
	}

	event := ExtractPurchase(raw)

	assert.Empty(t, event.Email)
}

func TestExtractPurchaseNumericValues(t *testing.T) {
	// JSON numbers arrive as float64; amounts and legacy ids must
	// still resolve.
	raw := map[string]any{
		"status":      "approved",
		"buyer_email": "a@b.com",
		"amount":      float64(99.9),
		"id":          float64(12345),
	}

	event := ExtractPurchase(raw)

	assert.Equal(t, "99.9", event.Amount)
	assert.Equal(t, "12345", event.TransactionID)
}

func TestExtractPurchaseIgnoresWrongTypes(t *testing.T) {
	raw := map[string]any{
		"status":      "approved",
		"customer":    "not-an-object",
		"buyer_email": "a@b.com",
		"amount":      true,
	}

	event := ExtractPurchase(raw)

	assert.Equal(t, "a@b.com", event.Email)
	assert.Empty(t, event.Amount)
}
