package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/mapperpro/kwify-provisioner/internal/config"
)

// CORS allows the Kwify signature headers alongside the usual set.
func CORS(cfg *config.Config) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Kwify-Signature, X-Signature",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: false,
	})
}
