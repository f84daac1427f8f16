package handlers

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/pokedexcl/internal/debug"
)

// HealthResponse representa el estado de salud del sistema
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version,omitempty"`
}

// HealthHandler comprueba la base de datos y el directorio de imágenes.
type HealthHandler struct {
	db        *sql.DB
	uploadDir string
}

func NewHealthHandler(db *sql.DB, uploadDir string) *HealthHandler {
	return &HealthHandler{db: db, uploadDir: uploadDir}
}

// Health proporciona un health check completo del sistema
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	services := make(map[string]string)
	overall := "healthy"

	// ============================================================================
	// CHECK: Base de Datos
	// ============================================================================
	if h.db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			services["database"] = "unhealthy: " + err.Error()
			overall = "degraded"
		} else {
			services["database"] = "healthy"
		}
	} else {
		services["database"] = "not_initialized"
		overall = "degraded"
	}

	// ============================================================================
	// CHECK: Directorio de imágenes
	// ============================================================================
	if info, err := os.Stat(h.uploadDir); err != nil {
		// Aún no se subió ninguna imagen; el directorio se crea on demand.
		services["uploads"] = "not_created"
	} else if !info.IsDir() {
		services["uploads"] = "unhealthy: no es un directorio"
		overall = "degraded"
	} else {
		services["uploads"] = "healthy"
	}

	debug.UpdateApiStatus(overall, services["database"], os.Getenv("APP_VERSION"))

	statusCode := fiber.StatusOK
	if overall == "degraded" {
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
		Services:  services,
		Version:   os.Getenv("APP_VERSION"),
	})
}
