package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement representa un movimiento del libro de stock (entrada o salida).
// Inmutable una vez escrito; el borrado aplica el delta compensatorio al equipo.
type StockMovement struct {
	ID          string
	EquipmentID string
	Type        string // in, out
	Quantity    int    // siempre positivo; el signo lo da Type
	Description string
	CreatedAt   time.Time

	// EquipmentName solo se llena en listados con JOIN a equipment.
	EquipmentName string
}
