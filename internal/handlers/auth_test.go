package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func jsonRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func registrar(t *testing.T, ta *testApp, nombre, email, password string) {
	t.Helper()
	status, body := ta.do(t, jsonRequest("/api/user",
		`{"action":"register","nombre":"`+nombre+`","email":"`+email+`","password":"`+password+`"}`))
	if status != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%v)", email, status, body)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ta := newTestApp(t)

	registrar(t, ta, "Ash", "ash@example.com", "pikachu123")

	status, body := ta.do(t, jsonRequest("/api/user",
		`{"action":"login","email":"ash@example.com","password":"pikachu123"}`))
	if status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%v)", status, body)
	}
	if body["message"] != "Login exitoso." {
		t.Errorf("unexpected message: %v", body["message"])
	}

	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user payload, got %v", body)
	}
	if user["nombre"] != "Ash" || user["email"] != "ash@example.com" {
		t.Errorf("unexpected user payload: %v", user)
	}
	// Nada de material de contraseña ni token en la respuesta
	for _, campo := range []string{"password", "token"} {
		if _, present := user[campo]; present {
			t.Errorf("field %q must not be returned", campo)
		}
		if _, present := body[campo]; present {
			t.Errorf("field %q must not be returned", campo)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	ta := newTestApp(t)

	bodies := []string{
		`{"action":"register","email":"a@b.c","password":"x"}`,
		`{"action":"register","nombre":"Ash","password":"x"}`,
		`{"action":"register","nombre":"Ash","email":"a@b.c"}`,
	}
	for i, b := range bodies {
		status, body := ta.do(t, jsonRequest("/api/user", b))
		if status != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d (%v)", i, status, body)
		}
	}
	if n := ta.countRows(t, "usuarios"); n != 0 {
		t.Errorf("expected 0 rows after rejected registers, got %d", n)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ta := newTestApp(t)

	registrar(t, ta, "Ash", "ash@example.com", "original")

	status, body := ta.do(t, jsonRequest("/api/user",
		`{"action":"register","nombre":"Impostor","email":"ash@example.com","password":"otra"}`))
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%v)", status, body)
	}
	if body["error"] != "El email ya está registrado." {
		t.Errorf("unexpected message: %v", body["error"])
	}
	if n := ta.countRows(t, "usuarios"); n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}

	// La fila existente sigue intacta: el login original funciona
	status, _ = ta.do(t, jsonRequest("/api/user",
		`{"action":"login","email":"ash@example.com","password":"original"}`))
	if status != http.StatusOK {
		t.Errorf("original credentials broken after rejected register: %d", status)
	}
}

// Contraseña incorrecta y email inexistente producen exactamente la misma
// respuesta 401.
func TestLoginFailureSymmetry(t *testing.T) {
	ta := newTestApp(t)

	registrar(t, ta, "Ash", "ash@example.com", "correcta")

	status1, body1 := ta.do(t, jsonRequest("/api/user",
		`{"action":"login","email":"ash@example.com","password":"incorrecta"}`))
	status2, body2 := ta.do(t, jsonRequest("/api/user",
		`{"action":"login","email":"nadie@example.com","password":"loquesea"}`))

	if status1 != http.StatusUnauthorized || status2 != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", status1, status2)
	}
	if body1["error"] != body2["error"] || body1["success"] != body2["success"] {
		t.Errorf("asymmetric failure bodies: %v vs %v", body1, body2)
	}
	if body1["error"] != "Email o contraseña incorrectos." {
		t.Errorf("unexpected message: %v", body1["error"])
	}
}

func TestLoginValidation(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.do(t, jsonRequest("/api/user", `{"action":"login","email":"a@b.c"}`))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["error"] != "Email y contraseña son obligatorios." {
		t.Errorf("unexpected message: %v", body["error"])
	}
}

func TestAuthActionDispatch(t *testing.T) {
	ta := newTestApp(t)

	// Sin action
	status, body := ta.do(t, jsonRequest("/api/user", `{"email":"a@b.c"}`))
	if status != http.StatusBadRequest || body["error"] != "Acción no especificada." {
		t.Errorf("missing action: got %d %v", status, body)
	}

	// JSON inválido
	status, body = ta.do(t, jsonRequest("/api/user", `{no-es-json`))
	if status != http.StatusBadRequest || body["error"] != "Acción no especificada." {
		t.Errorf("bad json: got %d %v", status, body)
	}

	// Acción desconocida
	status, body = ta.do(t, jsonRequest("/api/user", `{"action":"destruir"}`))
	if status != http.StatusBadRequest || body["error"] != "Acción no reconocida." {
		t.Errorf("unknown action: got %d %v", status, body)
	}
}

func TestAuthMethodNotAllowed(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.do(t, httptest.NewRequest(http.MethodPut, "/api/user", nil))
	if status != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", status)
	}
	if body["error"] != "Método no permitido." {
		t.Errorf("unexpected message: %v", body["error"])
	}
}
