package dto

import "time"

// RegisterMovementRequest entrada para registrar una entrada o salida de stock.
type RegisterMovementRequest struct {
	EquipmentID string `json:"equipment_id" validate:"required,uuid"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Type        string `json:"type" validate:"required,oneof=in out"`
	Description string `json:"description"`
}

// RegisterMovementResponse confirma el movimiento registrado con su tipo.
type RegisterMovementResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// MovementResponse salida de un movimiento en listados (incluye nombre del equipo).
type MovementResponse struct {
	ID            string    `json:"id"`
	EquipmentID   string    `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
