package dto

import "time"

// CreateEquipmentRequest entrada para crear un equipo con su cantidad inicial.
type CreateEquipmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" validate:"min=0"`
}

// EquipmentResponse salida de un equipo.
type EquipmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
