package handlers

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/mattn/go-sqlite3"

	"github.com/yourorg/pokedexcl/internal/middleware"
	"github.com/yourorg/pokedexcl/internal/repository"
	"github.com/yourorg/pokedexcl/internal/uploads"
)

// testApp levanta la aplicación completa sobre una base sqlite en memoria y
// un directorio temporal de imágenes, con el mismo pipeline de middleware y
// rutas que el servidor real (sin rate limiting, para no frenar los tests).
type testApp struct {
	app *fiber.App
	db  *sql.DB
	dir string // directorio físico de imágenes
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// :memory: vive por conexión
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	schema := []string{
		`CREATE TABLE pokemon (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			numero_pokemon INTEGER NOT NULL,
			nombre TEXT NOT NULL,
			tipo TEXT NOT NULL,
			nivel INTEGER NOT NULL DEFAULT 1,
			habilidad TEXT,
			imagen_url TEXT
		)`,
		`CREATE TABLE usuarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			telefono TEXT
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}

	dir := filepath.Join(t.TempDir(), "images", "pokemon")
	imagenes := uploads.NewStore(dir, "public/images/pokemon")

	pokemonHandler := NewPokemonHandler(repository.NewPokemonRepo(db), imagenes)
	authHandler := NewAuthHandler(repository.NewUsuarioRepo(db))
	usuariosHandler := NewUsuariosHandler(repository.NewUsuarioRepo(db))
	healthHandler := NewHealthHandler(db, dir)

	app := fiber.New(fiber.Config{ErrorHandler: JSONError})
	app.Use(recover.New())
	app.Use(middleware.CORS())

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)

	api.Get("/pokemon", pokemonHandler.Get)
	api.Post("/pokemon", pokemonHandler.Create)
	api.Put("/pokemon", pokemonHandler.Update)
	api.Delete("/pokemon", pokemonHandler.Delete)
	api.All("/pokemon", MethodNotAllowed)

	api.Post("/user", authHandler.Handle)
	api.All("/user", MethodNotAllowed)

	api.Get("/usuarios", usuariosHandler.Get)
	api.Put("/usuarios", usuariosHandler.Update)
	api.Delete("/usuarios", usuariosHandler.Delete)
	api.All("/usuarios", MethodNotAllowed)

	return &testApp{app: app, db: db, dir: dir}
}

// do ejecuta la request y decodifica el body JSON en un mapa genérico.
func (ta *testApp) do(t *testing.T, req *http.Request) (int, map[string]interface{}) {
	t.Helper()

	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var payload map[string]interface{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("response is not a JSON object: %v (body: %s)", err, body)
		}
	}
	return resp.StatusCode, payload
}

// doList es como do pero para respuestas que son un arreglo JSON.
func (ta *testApp) doList(t *testing.T, req *http.Request) (int, []map[string]interface{}) {
	t.Helper()

	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var payload []map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("response is not a JSON array: %v (body: %s)", err, body)
	}
	return resp.StatusCode, payload
}

func (ta *testApp) countRows(t *testing.T, table string) int {
	t.Helper()
	var n int
	if err := ta.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
