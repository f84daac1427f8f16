package models

import "strings"

// Usuario is the public shape of a `usuarios` row. The stored credential
// never travels with it.
type Usuario struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// UsuarioCredenciales carries the stored hash for login verification.
// Internal use only, it is never serialized.
type UsuarioCredenciales struct {
	ID           int64
	Nombre       string
	Email        string
	PasswordHash string
}

// AuthRequest is the JSON body of POST /api/user. The `action` field
// selects between register and login.
type AuthRequest struct {
	Action   string `json:"action"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Telefono string `json:"telefono"`
}

// RegisterUser is the validated registration command.
type RegisterUser struct {
	Nombre   string
	Email    string
	Password string
	Telefono string
}

// LoginUser is the validated login command.
type LoginUser struct {
	Email    string
	Password string
}

// RegisterCommand validates the request for a registration.
func (r AuthRequest) RegisterCommand() (*RegisterUser, error) {
	nombre := trim(r.Nombre)
	email := trim(r.Email)
	if nombre == "" || email == "" || r.Password == "" {
		return nil, &ValidationError{Message: "Nombre, email y contraseña son obligatorios."}
	}
	return &RegisterUser{
		Nombre:   nombre,
		Email:    email,
		Password: r.Password,
		Telefono: trim(r.Telefono),
	}, nil
}

// LoginCommand validates the request for a login.
func (r AuthRequest) LoginCommand() (*LoginUser, error) {
	email := trim(r.Email)
	if email == "" || r.Password == "" {
		return nil, &ValidationError{Message: "Email y contraseña son obligatorios."}
	}
	return &LoginUser{Email: email, Password: r.Password}, nil
}

// UsuarioForm is the url-encoded body of PUT /api/usuarios.
type UsuarioForm struct {
	ID       int64  `form:"id"`
	Nombre   string `form:"nombre"`
	Email    string `form:"email"`
	Telefono string `form:"telefono"`
	Password string `form:"password"`
}

// UpdateUsuario is the validated command for the users-admin update.
// Password queda vacío cuando el cliente no envía una contraseña nueva;
// en ese caso el hash almacenado no se toca.
type UpdateUsuario struct {
	ID       int64
	Nombre   string
	Email    string
	Telefono string
	Password string
}

// UpdateCommand validates the form for a user update.
func (f UsuarioForm) UpdateCommand() (*UpdateUsuario, error) {
	if f.ID <= 0 {
		return nil, &ValidationError{Message: "ID de usuario es obligatorio."}
	}
	nombre := trim(f.Nombre)
	email := trim(f.Email)
	if nombre == "" || email == "" {
		return nil, &ValidationError{Message: "Nombre y email son obligatorios."}
	}
	return &UpdateUsuario{
		ID:       f.ID,
		Nombre:   nombre,
		Email:    email,
		Telefono: trim(f.Telefono),
		Password: f.Password,
	}, nil
}

func trim(s string) string { return strings.TrimSpace(s) }
