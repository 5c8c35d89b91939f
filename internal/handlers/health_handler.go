package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mapperpro/kwify-provisioner/internal/config"
	"github.com/mapperpro/kwify-provisioner/internal/dto"
	"github.com/mapperpro/kwify-provisioner/internal/services"
)

type HealthHandler struct {
	cfg    *config.Config
	mailer services.CredentialMailer
}

func NewHealthHandler(cfg *config.Config, mailer services.CredentialMailer) *HealthHandler {
	return &HealthHandler{cfg: cfg, mailer: mailer}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	mailStatus := "ok"
	if err := h.mailer.Verify(); err != nil {
		mailStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:            "ok",
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		SignatureEnforced: h.cfg.WebhookSecret != "",
		Mail:              mailStatus,
	})
}
