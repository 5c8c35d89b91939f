package services

import (
	"strconv"

	"github.com/mapperpro/kwify-provisioner/internal/dto"
)

// DefaultDisplayName is used when the payload carries no customer name.
const DefaultDisplayName = "Customer"

// ExtractPurchase maps a raw Kwify payload onto a PurchaseEvent. Kwify
// has shipped several payload shapes over time, so every field resolves
// through an ordered list of candidates, first non-empty wins. Nothing
// is validated here; the handler gates on status and email afterwards.
func ExtractPurchase(raw map[string]any) dto.PurchaseEvent {
	customer := nestedObject(raw, "customer")
	product := nestedObject(raw, "product")

	displayName := firstNonEmpty(
		stringField(customer, "name"),
		stringField(raw, "buyer_name"),
	)
	if displayName == "" {
		displayName = DefaultDisplayName
	}

	return dto.PurchaseEvent{
		Email: firstNonEmpty(
			stringField(customer, "email"),
			stringField(raw, "buyer_email"),
		),
		DisplayName: displayName,
		Phone: firstNonEmpty(
			stringField(customer, "phone"),
			stringField(raw, "buyer_phone"),
		),
		ProductName: firstNonEmpty(
			stringField(product, "name"),
			stringField(raw, "product_name"),
		),
		Amount: firstNonEmpty(
			stringField(raw, "amount"),
			stringField(raw, "price"),
		),
		TransactionID: firstNonEmpty(
			stringField(raw, "transaction_id"),
			stringField(raw, "id"),
		),
		Status: stringField(raw, "status"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nestedObject(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return nil
}

// stringField reads a string-ish value; JSON numbers (amounts, legacy
// numeric ids) are stringified, anything else counts as absent.
func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
