package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourorg/pokedexcl/internal/models"
	"github.com/yourorg/pokedexcl/internal/repository"
)

// UsuariosHandler atiende /api/usuarios: administración de cuentas (lista,
// detalle, actualización y borrado). Misma forma que el handler de Pokémon,
// más la re-verificación de unicidad de email en la actualización.
type UsuariosHandler struct {
	repo repository.UsuarioRepository
}

func NewUsuariosHandler(repo repository.UsuarioRepository) *UsuariosHandler {
	return &UsuariosHandler{repo: repo}
}

// Get handles GET /api/usuarios: detalle si viene ?id=, lista si no.
func (h *UsuariosHandler) Get(c *fiber.Ctx) error {
	rawID := c.Query("id")
	if rawID == "" {
		usuarios, err := h.repo.List(c.UserContext())
		if err != nil {
			log.Printf("❌ Error al obtener usuarios: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
				Error: "Error al obtener usuarios.",
			})
		}
		return c.Status(fiber.StatusOK).JSON(usuarios)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Usuario no encontrado."})
	}
	usuario, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Usuario no encontrado."})
		}
		log.Printf("❌ Error al obtener usuario id=%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Error al obtener usuarios.",
		})
	}
	return c.Status(fiber.StatusOK).JSON(usuario)
}

// Update handles PUT /api/usuarios (body url-encoded; password opcional).
func (h *UsuariosHandler) Update(c *fiber.Ctx) error {
	var form models.UsuarioForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FailureResponse{
			Error: "Cuerpo de la petición inválido.",
		})
	}

	cmd, err := form.UpdateCommand()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FailureResponse{Error: err.Error()})
	}

	// El email no puede pertenecer a otro usuario distinto del actualizado.
	taken, err := h.repo.EmailTaken(c.UserContext(), cmd.Email, cmd.ID)
	if err != nil {
		log.Printf("❌ Error al verificar email: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al verificar email.",
		})
	}
	if taken {
		return c.Status(fiber.StatusConflict).JSON(models.FailureResponse{
			Error: "El email ya está registrado en otro usuario.",
		})
	}

	// Solo se rehashea si el cliente envió una contraseña nueva.
	hash := ""
	if cmd.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
				Error: "Error al proteger la contraseña.",
			})
		}
		hash = string(hashed)
	}

	if err := h.repo.Update(c.UserContext(), cmd, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.FailureResponse{
				Error: "Usuario no encontrado o no hubo cambios.",
			})
		}
		log.Printf("❌ Error al actualizar usuario id=%d: %v", cmd.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al actualizar el usuario.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Success: true,
		Message: "Usuario actualizado con éxito.",
	})
}

// Delete handles DELETE /api/usuarios?id=.
func (h *UsuariosHandler) Delete(c *fiber.Ctx) error {
	rawID := c.Query("id")
	if rawID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "ID de usuario es obligatorio para eliminar.",
		})
	}
	id, _ := strconv.ParseInt(rawID, 10, 64)

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.FailureResponse{
				Error: "Usuario no encontrado.",
			})
		}
		log.Printf("❌ Error al eliminar usuario id=%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al eliminar el usuario.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Success: true,
		Message: "Usuario eliminado con éxito.",
	})
}
