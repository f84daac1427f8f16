package models

// ErrorResponse is a simple error shape for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the envelope for failed mutating operations.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse is the envelope for successful writes and deletes.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationError reporta campos obligatorios ausentes o inválidos. Se
// devuelve desde la validación del comando y el handler decide la respuesta.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
