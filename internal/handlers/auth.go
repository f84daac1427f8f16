package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourorg/pokedexcl/internal/models"
	"github.com/yourorg/pokedexcl/internal/repository"
)

// AuthHandler atiende POST /api/user: registro y login de usuarios según el
// campo `action` del body JSON.
type AuthHandler struct {
	repo repository.UsuarioRepository
}

func NewAuthHandler(repo repository.UsuarioRepository) *AuthHandler {
	return &AuthHandler{repo: repo}
}

// Handle despacha register/login. Acción ausente o desconocida es un 400.
func (h *AuthHandler) Handle(c *fiber.Ctx) error {
	var req models.AuthRequest
	if err := c.BodyParser(&req); err != nil || req.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.FailureResponse{
			Error: "Acción no especificada.",
		})
	}

	switch req.Action {
	case "register":
		return h.register(c, req)
	case "login":
		return h.login(c, req)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(models.FailureResponse{
			Error: "Acción no reconocida.",
		})
	}
}

func (h *AuthHandler) register(c *fiber.Ctx, req models.AuthRequest) error {
	cmd, err := req.RegisterCommand()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FailureResponse{Error: err.Error()})
	}

	// La unicidad del email se verifica aquí, no por restricción declarativa.
	taken, err := h.repo.EmailTaken(c.UserContext(), cmd.Email, 0)
	if err != nil {
		log.Printf("❌ Error al verificar email: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al verificar email.",
		})
	}
	if taken {
		return c.Status(fiber.StatusConflict).JSON(models.FailureResponse{
			Error: "El email ya está registrado.",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al proteger la contraseña.",
		})
	}

	id, err := h.repo.Create(c.UserContext(), cmd, string(hash))
	if err != nil {
		log.Printf("❌ Error al registrar usuario: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al ejecutar el registro.",
		})
	}

	log.Printf("✅ Usuario registrado: id=%d, email=%s", id, cmd.Email)
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{
		Success: true,
		Message: "Usuario registrado con éxito.",
	})
}

func (h *AuthHandler) login(c *fiber.Ctx, req models.AuthRequest) error {
	cmd, err := req.LoginCommand()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FailureResponse{Error: err.Error()})
	}

	user, err := h.repo.GetByEmail(c.UserContext(), cmd.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Printf("❌ Error al consultar usuario: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al consultar usuario.",
		})
	}

	// Usuario inexistente y contraseña incorrecta producen exactamente la
	// misma respuesta; con usuario ausente igualmente se compara contra un
	// hash vacío para no abaratar ese camino.
	hash := ""
	if user != nil {
		hash = user.PasswordHash
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(cmd.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.FailureResponse{
			Error: "Email o contraseña incorrectos.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login exitoso.",
		"user": fiber.Map{
			"id":     user.ID,
			"nombre": user.Nombre,
			"email":  user.Email,
		},
	})
}
