package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// ============================================================================
// RATE LIMITING MIDDLEWARE
// ============================================================================
// Protege el backend contra abuso
// Implementa diferentes niveles según criticidad del endpoint

// GlobalRateLimiter - Limitador general para todos los endpoints
// 200 requests por minuto por IP
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        200,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"message":     "demasiadas solicitudes, intenta de nuevo en un minuto",
				"retry_after": 60,
			})
		},
		SkipFailedRequests:     false,
		SkipSuccessfulRequests: false,
		LimiterMiddleware:      limiter.SlidingWindow{},
	})
}

// StrictRateLimiter - Limitador para el endpoint de autenticación
// 10 requests por minuto (protege contra fuerza bruta)
func StrictRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Rate limit por IP + endpoint para mejor granularidad
			return c.IP() + ":" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"message":     "demasiadas solicitudes de autenticación, intenta de nuevo en un minuto",
				"retry_after": 60,
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
