package stock

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el par "insertar movimiento +
// ajustar cantidad" quede confirmado completo o no quede nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		equipRepo repository.EquipmentRepository,
	) error) error
}
