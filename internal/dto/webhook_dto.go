package dto

// PurchaseEvent is the normalized view of a Kwify webhook payload.
// Only Email is required downstream; everything else is best-effort.
type PurchaseEvent struct {
	Email         string
	DisplayName   string
	Phone         string
	ProductName   string
	Amount        string
	TransactionID string
	Status        string
}

// PurchaseContext is the slice of purchase metadata included in the
// credentials email.
type PurchaseContext struct {
	ProductName   string
	Amount        string
	TransactionID string
}

func (e PurchaseEvent) Context() PurchaseContext {
	return PurchaseContext{
		ProductName:   e.ProductName,
		Amount:        e.Amount,
		TransactionID: e.TransactionID,
	}
}

// ProvisionedAccount is a transient copy of the identity provider's
// user record; the provider owns the real thing.
type ProvisionedAccount struct {
	AccountID   string
	Email       string
	DisplayName string
}

// DeliveryResult reports the outcome of a credentials email. Delivery
// failures never fail the pipeline; they surface as email_sent=false.
type DeliveryResult struct {
	Delivered   bool
	MessageID   string
	ErrorDetail string
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type IgnoredResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type WebhookSuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    WebhookData `json:"data"`
}

type WebhookData struct {
	FirebaseUID   string `json:"firebase_uid"`
	Email         string `json:"email"`
	EmailSent     bool   `json:"email_sent"`
	TransactionID string `json:"transaction_id"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	Timestamp         string `json:"timestamp"`
	SignatureEnforced bool   `json:"signature_enforced"`
	Mail              string `json:"mail"`
}
