package dto

// SuccessResponse envoltura estándar de respuestas exitosas.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse envoltura estándar de errores HTTP.
// Error lleva el detalle de la causa solo en entorno development.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Success construye la envoltura exitosa.
func Success(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// Error construye la envoltura de error.
func Error(message, detail string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Error: detail}
}
