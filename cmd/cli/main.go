package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	appdb "github.com/yourorg/pokedexcl/internal/db"
)

func main() {
	_ = godotenv.Load()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("==== Pokédex CLI ====")
		fmt.Println("1) Health check API")
		fmt.Println("2) Seed database (usuario y Pokémon de ejemplo)")
		fmt.Println("3) Exit")
		fmt.Print("Select option: ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)
		switch choice {
		case "1":
			doHealthCheck()
		case "2":
			doSeed()
		case "3":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Invalid option")
		}
		fmt.Println()
	}
}

func doHealthCheck() {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://127.0.0.1:8080"
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(base + "/api/health")
	if err != nil {
		fmt.Printf("health check failed: %v\n", err)
		return
	}
	defer resp.Body.Close()
	fmt.Printf("health: %s\n", resp.Status)
}

func doSeed() {
	db, err := appdb.Connect()
	if err != nil {
		log.Printf("db connect error: %v", err)
		return
	}
	defer db.Close()

	if err := appdb.EnsureSchema(db); err != nil {
		log.Printf("ensure schema error: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := seedUsuario(ctx, db); err != nil {
		log.Printf("seed usuario error: %v", err)
		return
	}
	if err := seedPokemon(ctx, db); err != nil {
		log.Printf("seed pokemon error: %v", err)
		return
	}
	fmt.Println("✅ Seed completado")
}

func seedUsuario(ctx context.Context, db *sql.DB) error {
	email := "entrenador@example.com"

	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM usuarios WHERE email = ?`, email).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		fmt.Println("usuario de ejemplo ya existe")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("pikachu123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO usuarios (nombre, email, password, telefono) VALUES (?, ?, ?, ?)`,
		"Entrenador Demo", email, string(hash), "")
	if err == nil {
		fmt.Printf("usuario creado: %s / pikachu123\n", email)
	}
	return err
}

func seedPokemon(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pokemon`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		fmt.Println("tabla pokemon ya tiene registros")
		return nil
	}

	samples := []struct {
		numero    int
		nombre    string
		tipo      string
		nivel     int
		habilidad string
	}{
		{25, "Pikachu", "Eléctrico", 5, "Estático"},
		{1, "Bulbasaur", "Planta", 5, "Espesura"},
		{4, "Charmander", "Fuego", 5, "Mar Llamas"},
	}
	for _, s := range samples {
		_, err := db.ExecContext(ctx,
			`INSERT INTO pokemon (numero_pokemon, nombre, tipo, nivel, habilidad, imagen_url) VALUES (?, ?, ?, ?, ?, NULL)`,
			s.numero, s.nombre, s.tipo, s.nivel, s.habilidad)
		if err != nil {
			return err
		}
		fmt.Printf("pokemon creado: #%d %s\n", s.numero, s.nombre)
	}
	return nil
}
