package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

// Connect returns a MySQL connection using env vars.
func Connect() (*sql.DB, error) {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "3306"
	}
	if name == "" {
		name = "formulario"
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8", user, pass, host, port, name)
	return sql.Open("mysql", dsn)
}

// EnsureSchema creates required tables if not exist.
func EnsureSchema(db *sql.DB) error {
	if skip := strings.TrimSpace(os.Getenv("DB_SKIP_SCHEMA")); strings.EqualFold(skip, "true") || skip == "1" {
		log.Printf("EnsureSchema: skipped (DB_SKIP_SCHEMA=%q)", skip)
		return nil
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS pokemon (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			numero_pokemon INT NOT NULL,
			nombre VARCHAR(100) NOT NULL,
			tipo VARCHAR(50) NOT NULL,
			nivel INT NOT NULL DEFAULT 1,
			habilidad VARCHAR(100) NULL,
			imagen_url VARCHAR(255) NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`); err != nil {
		return err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS usuarios (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			nombre VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			telefono VARCHAR(30) NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`); err != nil {
		return err
	}

	return nil
}
