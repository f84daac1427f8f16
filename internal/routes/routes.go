package routes

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/yourorg/pokedexcl/internal/debug"
	"github.com/yourorg/pokedexcl/internal/handlers"
	"github.com/yourorg/pokedexcl/internal/middleware"
	"github.com/yourorg/pokedexcl/internal/repository"
	"github.com/yourorg/pokedexcl/internal/uploads"
)

// Register construye los handlers con sus dependencias explícitas y cuelga
// todas las rutas de la aplicación.
func Register(app *fiber.App, db *sql.DB) {
	publicDir := os.Getenv("UPLOAD_DIR")
	if publicDir == "" {
		publicDir = "public"
	}
	imagenes := uploads.NewStore(
		filepath.Join(publicDir, "images", "pokemon"),
		"public/images/pokemon",
	)

	pokemonRepo := repository.NewPokemonRepo(db)
	usuarioRepo := repository.NewUsuarioRepo(db)

	pokemonHandler := handlers.NewPokemonHandler(pokemonRepo, imagenes)
	authHandler := handlers.NewAuthHandler(usuarioRepo)
	usuariosHandler := handlers.NewUsuariosHandler(usuarioRepo)
	healthHandler := handlers.NewHealthHandler(db, imagenes.Dir())

	api := app.Group("/api")
	api.Use(middleware.GlobalRateLimiter())

	// Health check
	api.Get("/health", healthHandler.Health)

	// ============================================================================
	// POKÉMON (GET lista/detalle, POST multipart, PUT url-encoded, DELETE)
	// ============================================================================
	api.Get("/pokemon", pokemonHandler.Get)
	api.Post("/pokemon", pokemonHandler.Create)
	api.Put("/pokemon", pokemonHandler.Update)
	api.Delete("/pokemon", pokemonHandler.Delete)
	api.All("/pokemon", handlers.MethodNotAllowed)

	// ============================================================================
	// AUTENTICACIÓN (register/login por action, con rate limiting estricto)
	// ============================================================================
	api.Post("/user", middleware.StrictRateLimiter(), authHandler.Handle)
	api.All("/user", handlers.MethodNotAllowed)

	// ============================================================================
	// ADMINISTRACIÓN DE USUARIOS
	// ============================================================================
	api.Get("/usuarios", usuariosHandler.Get)
	api.Put("/usuarios", usuariosHandler.Update)
	api.Delete("/usuarios", usuariosHandler.Delete)
	api.All("/usuarios", handlers.MethodNotAllowed)

	// Imágenes subidas, servidas por su ruta relativa (imagen_url)
	app.Static("/public", publicDir)

	// Dashboard de debugging (solo si POKEDEX_DEBUG_DASHBOARD=true)
	if debug.IsEnabled() {
		app.Use("/debug/logs", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/debug/logs", websocket.New(debug.HandleWebSocketFiber))
	}
}
