package dto

// ErrorResponse cuerpo de error HTTP: código de error estable + mensaje para el usuario.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse respuesta genérica con mensaje de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
