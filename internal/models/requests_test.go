package models

import (
	"errors"
	"testing"
)

func TestPokemonFormCreateCommand(t *testing.T) {
	nivel := 5
	form := PokemonForm{Numero: 25, Nombre: "  Pikachu ", Tipo: "Eléctrico", Nivel: &nivel, Habilidad: " Estático "}

	cmd, err := form.CreateCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Nombre != "Pikachu" || cmd.Habilidad != "Estático" {
		t.Errorf("expected trimmed fields, got %+v", cmd)
	}
	if cmd.Nivel != 5 {
		t.Errorf("expected nivel 5, got %d", cmd.Nivel)
	}
}

func TestPokemonFormCreateCommandDefaultsNivel(t *testing.T) {
	form := PokemonForm{Numero: 1, Nombre: "Bulbasaur", Tipo: "Planta"}

	cmd, err := form.CreateCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Nivel != 1 {
		t.Errorf("expected default nivel 1, got %d", cmd.Nivel)
	}
}

func TestPokemonFormCreateCommandInvalid(t *testing.T) {
	cases := []struct {
		name string
		form PokemonForm
	}{
		{"nombre vacío", PokemonForm{Numero: 25, Tipo: "Eléctrico"}},
		{"tipo vacío", PokemonForm{Numero: 25, Nombre: "Pikachu"}},
		{"numero cero", PokemonForm{Numero: 0, Nombre: "Pikachu", Tipo: "Eléctrico"}},
		{"numero negativo", PokemonForm{Numero: -3, Nombre: "Pikachu", Tipo: "Eléctrico"}},
		{"nombre solo espacios", PokemonForm{Numero: 25, Nombre: "   ", Tipo: "Eléctrico"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.form.CreateCommand()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestPokemonFormUpdateCommandRequiresID(t *testing.T) {
	form := PokemonForm{Numero: 25, Nombre: "Pikachu", Tipo: "Eléctrico"}
	if _, err := form.UpdateCommand(); err == nil {
		t.Fatal("expected error without id")
	}

	form.ID = 7
	cmd, err := form.UpdateCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.ID != 7 {
		t.Errorf("expected id 7, got %d", cmd.ID)
	}
}

func TestAuthRequestRegisterCommand(t *testing.T) {
	req := AuthRequest{Action: "register", Nombre: "Ash", Email: " ash@example.com ", Password: "secreta"}

	cmd, err := req.RegisterCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Email != "ash@example.com" {
		t.Errorf("expected trimmed email, got %q", cmd.Email)
	}

	for _, bad := range []AuthRequest{
		{Email: "a@b.c", Password: "x"},
		{Nombre: "Ash", Password: "x"},
		{Nombre: "Ash", Email: "a@b.c"},
	} {
		if _, err := bad.RegisterCommand(); err == nil {
			t.Errorf("expected error for %+v", bad)
		}
	}
}

func TestAuthRequestLoginCommand(t *testing.T) {
	if _, err := (AuthRequest{Email: "a@b.c"}).LoginCommand(); err == nil {
		t.Error("expected error without password")
	}
	if _, err := (AuthRequest{Password: "x"}).LoginCommand(); err == nil {
		t.Error("expected error without email")
	}
	cmd, err := (AuthRequest{Email: "a@b.c", Password: "x"}).LoginCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Email != "a@b.c" {
		t.Errorf("unexpected command: %+v", cmd)
	}
}

func TestUsuarioFormUpdateCommand(t *testing.T) {
	if _, err := (UsuarioForm{Nombre: "Ash", Email: "a@b.c"}).UpdateCommand(); err == nil {
		t.Error("expected error without id")
	}
	if _, err := (UsuarioForm{ID: 1, Email: "a@b.c"}).UpdateCommand(); err == nil {
		t.Error("expected error without nombre")
	}

	cmd, err := (UsuarioForm{ID: 1, Nombre: "Ash", Email: "a@b.c", Password: "nueva"}).UpdateCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Password != "nueva" {
		t.Errorf("expected password to pass through, got %q", cmd.Password)
	}
}
