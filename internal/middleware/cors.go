package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// ============================================================================
// CORS MIDDLEWARE
// ============================================================================
// El cliente corre en otro origen (dev server de Vite), así que todas las
// respuestas llevan las cabeceras CORS y el preflight OPTIONS se responde
// con un 200 sin cuerpo.

// CORS agrega las cabeceras cross-origin y corta el preflight.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}
