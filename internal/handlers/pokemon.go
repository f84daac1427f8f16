package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/yourorg/pokedexcl/internal/models"
	"github.com/yourorg/pokedexcl/internal/repository"
	"github.com/yourorg/pokedexcl/internal/uploads"
)

// PokemonHandler atiende /api/pokemon: lista, detalle, alta (con imagen
// opcional), actualización y borrado.
type PokemonHandler struct {
	repo     repository.PokemonRepository
	imagenes *uploads.Store
}

func NewPokemonHandler(repo repository.PokemonRepository, imagenes *uploads.Store) *PokemonHandler {
	return &PokemonHandler{repo: repo, imagenes: imagenes}
}

// Get handles GET /api/pokemon: detalle si viene ?id=, lista si no.
func (h *PokemonHandler) Get(c *fiber.Ctx) error {
	rawID := c.Query("id")
	if rawID == "" {
		pokemones, err := h.repo.List(c.UserContext())
		if err != nil {
			log.Printf("❌ Error al obtener Pokémon: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
				Error: "Error al obtener Pokémon.",
			})
		}
		return c.Status(fiber.StatusOK).JSON(pokemones)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Pokémon no encontrado."})
	}
	pokemon, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Pokémon no encontrado."})
		}
		log.Printf("❌ Error al obtener Pokémon id=%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Error al obtener Pokémon.",
		})
	}
	return c.Status(fiber.StatusOK).JSON(pokemon)
}

// Create handles POST /api/pokemon (multipart/form-data o campos de form).
func (h *PokemonHandler) Create(c *fiber.Ctx) error {
	var form models.PokemonForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FailureResponse{
			Error: "Cuerpo de la petición inválido.",
		})
	}

	cmd, err := form.CreateCommand()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.FailureResponse{Error: err.Error()})
	}

	// La imagen se guarda antes de escribir la fila; si la subida falla, el
	// alta se aborta sin tocar la base.
	imagenURL, err := h.guardarImagen(c, cmd.Nombre)
	if err != nil {
		log.Printf("❌ Error al subir imagen: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al subir imagen: " + err.Error(),
		})
	}

	id, err := h.repo.Create(c.UserContext(), cmd, imagenURL)
	if err != nil {
		log.Printf("❌ Error al registrar Pokémon: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al registrar el Pokémon.",
		})
	}

	log.Printf("✅ Pokémon registrado: id=%d, nombre=%s", id, cmd.Nombre)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Pokémon registrado con éxito.",
		"id":         id,
		"imagen_url": imagenURL,
	})
}

// Update handles PUT /api/pokemon (body url-encoded). Solo cambia los
// campos escalares; imagen_url nunca se toca por esta operación, aunque el
// cliente reenvíe imagen_url_existente con otro valor.
func (h *PokemonHandler) Update(c *fiber.Ctx) error {
	var form models.PokemonForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Cuerpo de la petición inválido.",
		})
	}

	cmd, err := form.UpdateCommand()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: err.Error()})
	}

	if err := h.repo.Update(c.UserContext(), cmd); err != nil {
		log.Printf("❌ Error al actualizar Pokémon id=%d: %v", cmd.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al actualizar el Pokémon.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Success: true,
		Message: "Pokémon actualizado con éxito.",
	})
}

// Delete handles DELETE /api/pokemon?id=.
func (h *PokemonHandler) Delete(c *fiber.Ctx) error {
	rawID := c.Query("id")
	if rawID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "ID de Pokémon es obligatorio para eliminar.",
		})
	}
	id, _ := strconv.ParseInt(rawID, 10, 64)

	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.FailureResponse{
				Error: "Pokémon no encontrado.",
			})
		}
		log.Printf("❌ Error al eliminar Pokémon id=%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.FailureResponse{
			Error: "Error al eliminar el Pokémon.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.SuccessResponse{
		Success: true,
		Message: "Pokémon eliminado con éxito.",
	})
}

// guardarImagen procesa el adjunto opcional `imagen`. Devuelve nil sin error
// cuando la petición no trae archivo; cualquier otro fallo de transporte o
// de escritura aborta el alta completa.
func (h *PokemonHandler) guardarImagen(c *fiber.Ctx, nombre string) (*string, error) {
	fh, err := c.FormFile("imagen")
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, err
	}

	ruta, err := h.imagenes.Save(fh, nombre)
	if err != nil {
		return nil, err
	}
	return &ruta, nil
}
