package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/mapperpro/kwify-provisioner/internal/config"
	"github.com/mapperpro/kwify-provisioner/internal/dto"
	"github.com/mapperpro/kwify-provisioner/internal/services"
)

// Signature header names: primary and the legacy alias Kwify used
// before standardizing.
const (
	HeaderKwifySignature  = "X-Kwify-Signature"
	HeaderLegacySignature = "X-Signature"
)

type WebhookHandler struct {
	cfg         *config.Config
	provisioner services.AccountProvisioner
	mailer      services.CredentialMailer
}

func NewWebhookHandler(cfg *config.Config, provisioner services.AccountProvisioner, mailer services.CredentialMailer) *WebhookHandler {
	return &WebhookHandler{
		cfg:         cfg,
		provisioner: provisioner,
		mailer:      mailer,
	}
}

// HandleKwify runs the full pipeline for one webhook delivery:
// signature check, payload normalization, status gate, password
// generation, account provisioning and credential delivery. The route
// is registered with All so the method gate lives here, matching the
// state machine (preflight short-circuits, non-POST is rejected).
func (h *WebhookHandler) HandleKwify(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodOptions:
		// Preflight: empty 200, no pipeline.
		c.Status(fiber.StatusOK)
		return nil
	case fiber.MethodPost:
	default:
		return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
			Error: "method not allowed",
		})
	}

	body := c.Body()

	if h.cfg.WebhookSecret != "" {
		signature := c.Get(HeaderKwifySignature)
		if signature == "" {
			signature = c.Get(HeaderLegacySignature)
		}

		if !services.VerifySignature(body, signature, h.cfg.WebhookSecret) {
			slog.Warn("invalid webhook signature", "ip", c.IP())
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "invalid signature",
			})
		}
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid webhook payload",
		})
	}

	purchase := services.ExtractPurchase(raw)

	// Only approved/paid transactions provision an account. Anything
	// else is acknowledged so Kwify does not redeliver.
	if purchase.Status != "approved" && purchase.Status != "paid" {
		slog.Info("webhook ignored, transaction not approved", "status", purchase.Status)
		return c.JSON(dto.IgnoredResponse{
			Message: "webhook received, but transaction not approved",
			Status:  purchase.Status,
		})
	}

	if purchase.Email == "" {
		slog.Error("customer email not found in webhook payload", "transaction_id", purchase.TransactionID)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "customer email not found",
		})
	}

	password, err := services.GeneratePassword(h.cfg.PasswordLength)
	if err != nil {
		return err
	}

	account, err := h.provisioner.CreateAccount(c.UserContext(), purchase.Email, password, purchase.DisplayName)
	if err != nil {
		slog.Error("account provisioning failed", "email", purchase.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:   "failed to create user account",
			Details: err.Error(),
		})
	}

	slog.Info("account provisioned", "uid", account.AccountID, "email", account.Email)

	// Delivery failure does not roll back the account and does not
	// change the outcome; it only flips email_sent in the response.
	delivery := h.mailer.SendCredentials(purchase.Email, password, purchase.DisplayName, purchase.Context())
	if delivery.Delivered {
		slog.Info("credentials email sent", "email", purchase.Email, "message_id", delivery.MessageID)
	} else {
		slog.Error("credentials email delivery failed", "email", purchase.Email, "detail", delivery.ErrorDetail)
	}

	return c.JSON(dto.WebhookSuccessResponse{
		Success: true,
		Message: "user created and credentials email processed",
		Data: dto.WebhookData{
			FirebaseUID:   account.AccountID,
			Email:         purchase.Email,
			EmailSent:     delivery.Delivered,
			TransactionID: purchase.TransactionID,
		},
	})
}
