package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// EquipmentRepository puerto de persistencia para equipos.
type EquipmentRepository interface {
	Create(equipment *entity.Equipment) error
	GetByID(id string) (*entity.Equipment, error)
	// GetForUpdate obtiene el equipo bloqueando la fila (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Equipment, error)
	List() ([]*entity.Equipment, error)
	// AdjustQuantity suma delta (positivo o negativo) a la cantidad cacheada.
	AdjustQuantity(id string, delta int) error
}
