package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yourorg/pokedexcl/internal/models"
)

// JSONError es el ErrorHandler de la aplicación: cualquier fallo que escape
// de un handler (incluidos pánicos capturados por el middleware recover)
// termina en una respuesta JSON, nunca en una página de error plana.
func JSONError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	switch {
	case code == fiber.StatusMethodNotAllowed:
		return c.Status(code).JSON(models.ErrorResponse{Error: "Método no permitido."})
	case code == fiber.StatusNotFound:
		return c.Status(code).JSON(models.ErrorResponse{Error: "Recurso no encontrado."})
	case code < fiber.StatusInternalServerError:
		return c.Status(code).JSON(models.ErrorResponse{Error: fe.Message})
	}

	// Los 500 llevan una referencia corta para correlacionar con el log sin
	// filtrar el detalle interno al cliente.
	ref := uuid.NewString()
	log.Printf("❌ Error interno [%s] %s %s: %v", ref, c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
		Error: "Error interno del servidor. Referencia: " + ref,
	})
}

// MethodNotAllowed se registra como catch-all en cada endpoint para los
// verbos no soportados.
func MethodNotAllowed(c *fiber.Ctx) error {
	return fiber.ErrMethodNotAllowed
}
