package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	appdb "github.com/yourorg/pokedexcl/internal/db"
	"github.com/yourorg/pokedexcl/internal/handlers"
	"github.com/yourorg/pokedexcl/internal/middleware"
	"github.com/yourorg/pokedexcl/internal/routes"
)

func main() {
	_ = godotenv.Load()

	// Todo fallo que escape de un handler (incluidos pánicos) termina en
	// una respuesta JSON gracias a recover + JSONError.
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.JSONError,
	})
	app.Use(recover.New())
	app.Use(middleware.CORS())
	app.Use(logger.New())
	app.Use(middleware.MetricsMiddleware())

	// ============================================================================
	// DB CONNECTION
	// ============================================================================
	var dbReady bool

	go func() {
		for {
			db, err := appdb.Connect()
			if err != nil {
				log.Printf("db connect error: %v (retrying in 5s)", err)
				time.Sleep(5 * time.Second)
				continue
			}
			if err := appdb.EnsureSchema(db); err != nil {
				log.Printf("ensure schema error: %v (retrying in 5s)", err)
				time.Sleep(5 * time.Second)
				continue
			}
			routes.Register(app, db)
			dbReady = true
			log.Printf("✅ Database ready and routes registered")
			return
		}
	}()

	// Wait briefly for DB to be ready
	for i := 0; i < 10 && !dbReady; i++ {
		time.Sleep(500 * time.Millisecond)
	}

	// ============================================================================
	// GRACEFUL SHUTDOWN
	// ============================================================================
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\n🛑 Señal de terminación recibida, cerrando servidor...")

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️  Error cerrando servidor: %v", err)
		}

		log.Println("✅ Servidor cerrado correctamente")
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Servidor escuchando en :%s", port)
	log.Println("📍 Endpoints disponibles:")
	log.Println("   GET/POST/PUT/DELETE /api/pokemon   - Registro de Pokémon")
	log.Println("   POST                /api/user      - Registro y login")
	log.Println("   GET/PUT/DELETE      /api/usuarios  - Administración de usuarios")
	log.Println("   GET                 /api/health    - Estado del sistema")
	log.Println("💡 Presiona Ctrl+C para detener")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
