package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// StockMovementRepository puerto de persistencia para el libro de movimientos.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListWithEquipment lista los movimientos con el nombre del equipo (JOIN),
	// ordenados por fecha de creación descendente.
	ListWithEquipment() ([]*entity.StockMovement, error)
	Delete(id string) error
}
