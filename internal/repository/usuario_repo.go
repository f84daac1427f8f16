package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yourorg/pokedexcl/internal/models"
)

// UsuarioRepository defines the storage contract for the `usuarios` table.
//
// Email uniqueness is enforced at write time: every caller that writes an
// email re-checks it through EmailTaken first.
type UsuarioRepository interface {
	List(ctx context.Context) ([]models.Usuario, error)
	GetByID(ctx context.Context, id int64) (*models.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*models.UsuarioCredenciales, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, cmd *models.RegisterUser, passwordHash string) (int64, error)
	Update(ctx context.Context, cmd *models.UpdateUsuario, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type usuarioRepo struct {
	db *sql.DB
}

// NewUsuarioRepo returns a UsuarioRepository backed by db.
func NewUsuarioRepo(db *sql.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

const (
	sqlListUsuarios = `
		SELECT id, nombre, email, telefono
		FROM   usuarios
		ORDER  BY id DESC`

	sqlGetUsuario = `
		SELECT id, nombre, email, telefono
		FROM   usuarios
		WHERE  id = ?`

	sqlGetUsuarioPorEmail = `
		SELECT id, nombre, email, password
		FROM   usuarios
		WHERE  email = ?`

	sqlEmailTaken = `
		SELECT COUNT(*) FROM usuarios WHERE email = ? AND id != ?`

	sqlInsertUsuario = `
		INSERT INTO usuarios (nombre, email, password, telefono)
		VALUES (?, ?, ?, ?)`

	sqlUpdateUsuario = `
		UPDATE usuarios SET nombre = ?, email = ?, telefono = ? WHERE id = ?`

	sqlUpdateUsuarioConPassword = `
		UPDATE usuarios SET nombre = ?, email = ?, telefono = ?, password = ? WHERE id = ?`

	sqlDeleteUsuario = `
		DELETE FROM usuarios WHERE id = ?`
)

func (r *usuarioRepo) List(ctx context.Context) ([]models.Usuario, error) {
	rows, err := r.db.QueryContext(ctx, sqlListUsuarios)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usuarios := []models.Usuario{}
	for rows.Next() {
		var (
			u        models.Usuario
			telefono sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &telefono); err != nil {
			return nil, err
		}
		u.Telefono = telefono.String
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

func (r *usuarioRepo) GetByID(ctx context.Context, id int64) (*models.Usuario, error) {
	var (
		u        models.Usuario
		telefono sql.NullString
	)
	err := r.db.QueryRowContext(ctx, sqlGetUsuario, id).Scan(&u.ID, &u.Nombre, &u.Email, &telefono)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.Telefono = telefono.String
	return &u, nil
}

func (r *usuarioRepo) GetByEmail(ctx context.Context, email string) (*models.UsuarioCredenciales, error) {
	var u models.UsuarioCredenciales
	err := r.db.QueryRowContext(ctx, sqlGetUsuarioPorEmail, email).
		Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// EmailTaken reports whether email belongs to a user other than excludeID.
// Pass excludeID=0 to check against every user.
func (r *usuarioRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, sqlEmailTaken, email, excludeID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usuarioRepo) Create(ctx context.Context, cmd *models.RegisterUser, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx, sqlInsertUsuario,
		cmd.Nombre, cmd.Email, passwordHash, cmd.Telefono)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites the user's editable fields. When passwordHash is empty the
// stored credential is left untouched.
func (r *usuarioRepo) Update(ctx context.Context, cmd *models.UpdateUsuario, passwordHash string) error {
	var (
		res sql.Result
		err error
	)
	if passwordHash != "" {
		res, err = r.db.ExecContext(ctx, sqlUpdateUsuarioConPassword,
			cmd.Nombre, cmd.Email, cmd.Telefono, passwordHash, cmd.ID)
	} else {
		res, err = r.db.ExecContext(ctx, sqlUpdateUsuario,
			cmd.Nombre, cmd.Email, cmd.Telefono, cmd.ID)
	}
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

func (r *usuarioRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, sqlDeleteUsuario, id)
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
