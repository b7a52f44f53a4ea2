package entity

import "time"

// Equipment representa un equipo inventariable con su cantidad actual en stock.
// Quantity es un valor derivado y cacheado: la fuente de verdad es la suma
// de los deltas en stock_movements.
type Equipment struct {
	ID          string
	Name        string
	Description string
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
