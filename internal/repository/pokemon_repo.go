package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yourorg/pokedexcl/internal/models"
)

// PokemonRepository defines the storage contract for the `pokemon` table.
type PokemonRepository interface {
	List(ctx context.Context) ([]models.Pokemon, error)
	GetByID(ctx context.Context, id int64) (*models.Pokemon, error)
	Create(ctx context.Context, cmd *models.CreatePokemon, imagenURL *string) (int64, error)
	Update(ctx context.Context, cmd *models.UpdatePokemon) error
	Delete(ctx context.Context, id int64) error
}

type pokemonRepo struct {
	db *sql.DB
}

// NewPokemonRepo returns a PokemonRepository backed by db.
func NewPokemonRepo(db *sql.DB) PokemonRepository {
	return &pokemonRepo{db: db}
}

const (
	sqlListPokemon = `
		SELECT id, numero_pokemon, nombre, tipo, nivel, habilidad, imagen_url
		FROM   pokemon
		ORDER  BY id DESC`

	sqlGetPokemon = `
		SELECT id, numero_pokemon, nombre, tipo, nivel, habilidad, imagen_url
		FROM   pokemon
		WHERE  id = ?`

	sqlInsertPokemon = `
		INSERT INTO pokemon (numero_pokemon, nombre, tipo, nivel, habilidad, imagen_url)
		VALUES (?, ?, ?, ?, ?, ?)`

	// imagen_url queda deliberadamente fuera del UPDATE: la imagen nunca
	// se reemplaza por esta operación.
	sqlUpdatePokemon = `
		UPDATE pokemon
		SET    numero_pokemon = ?, nombre = ?, tipo = ?, nivel = ?, habilidad = ?
		WHERE  id = ?`

	sqlDeletePokemon = `
		DELETE FROM pokemon WHERE id = ?`
)

func (r *pokemonRepo) List(ctx context.Context) ([]models.Pokemon, error) {
	rows, err := r.db.QueryContext(ctx, sqlListPokemon)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pokemones := []models.Pokemon{}
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, err
		}
		pokemones = append(pokemones, *p)
	}
	return pokemones, rows.Err()
}

func (r *pokemonRepo) GetByID(ctx context.Context, id int64) (*models.Pokemon, error) {
	row := r.db.QueryRowContext(ctx, sqlGetPokemon, id)
	p, err := scanPokemon(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *pokemonRepo) Create(ctx context.Context, cmd *models.CreatePokemon, imagenURL *string) (int64, error) {
	res, err := r.db.ExecContext(ctx, sqlInsertPokemon,
		cmd.Numero, cmd.Nombre, cmd.Tipo, cmd.Nivel, cmd.Habilidad, imagenURL)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *pokemonRepo) Update(ctx context.Context, cmd *models.UpdatePokemon) error {
	_, err := r.db.ExecContext(ctx, sqlUpdatePokemon,
		cmd.Numero, cmd.Nombre, cmd.Tipo, cmd.Nivel, cmd.Habilidad, cmd.ID)
	return err
}

func (r *pokemonRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, sqlDeletePokemon, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner cubre tanto *sql.Row como *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPokemon(s scanner) (*models.Pokemon, error) {
	var (
		p         models.Pokemon
		habilidad sql.NullString
		imagenURL sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Numero, &p.Nombre, &p.Tipo, &p.Nivel, &habilidad, &imagenURL); err != nil {
		return nil, err
	}
	p.Habilidad = habilidad.String
	if imagenURL.Valid {
		p.ImagenURL = &imagenURL.String
	}
	return &p, nil
}
