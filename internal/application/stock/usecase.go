package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// LedgerUseCase registra, lista y elimina movimientos del libro de stock.
// Cada operación que toca movimiento + cantidad corre en una sola transacción
// con bloqueo de fila (SELECT FOR UPDATE) sobre el equipo, de modo que la
// invariante quantity == Σ entradas − Σ salidas no pueda romperse por un
// fallo entre las dos escrituras ni por salidas concurrentes.
type LedgerUseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, movRepo: movRepo}
}

// RegisterMovement registra una entrada o salida de stock y ajusta la cantidad
// cacheada del equipo en la misma transacción.
// Orden de validación: campos obligatorios, existencia del equipo, suficiencia
// de stock para salidas (verificada contra la fila ya bloqueada).
func (uc *LedgerUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (string, error) {
	if in.EquipmentID == "" || in.Quantity == 0 || in.Type == "" {
		return "", domain.ErrMissingFields
	}
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return "", domain.ErrMissingFields
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		equipRepo repository.EquipmentRepository,
	) error {
		equipment, err := equipRepo.GetForUpdate(in.EquipmentID)
		if err != nil {
			return err
		}
		if equipment == nil {
			return domain.ErrEquipmentNotFound
		}
		if in.Type == entity.MovementTypeOut && in.Quantity > equipment.Quantity {
			return domain.ErrInsufficientStock
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			EquipmentID: in.EquipmentID,
			Type:        in.Type,
			Quantity:    in.Quantity,
			Description: in.Description,
			CreatedAt:   time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		delta := in.Quantity
		if in.Type == entity.MovementTypeOut {
			delta = -in.Quantity
		}
		return equipRepo.AdjustQuantity(in.EquipmentID, delta)
	})
	if err != nil {
		return "", err
	}
	return in.Type, nil
}

// ListMovements lista los movimientos con el nombre del equipo, más reciente primero.
func (uc *LedgerUseCase) ListMovements() ([]dto.MovementResponse, error) {
	movements, err := uc.movRepo.ListWithEquipment()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			EquipmentID:   m.EquipmentID,
			EquipmentName: m.EquipmentName,
			Type:          m.Type,
			Quantity:      m.Quantity,
			Description:   m.Description,
			CreatedAt:     m.CreatedAt,
		})
	}
	return items, nil
}

// DeleteMovement elimina un movimiento aplicando el delta compensatorio al
// equipo: devuelve lo que sacó una salida, quita lo que metió una entrada.
// Ambas escrituras van en la misma transacción.
func (uc *LedgerUseCase) DeleteMovement(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		equipRepo repository.EquipmentRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrMovementNotFound
		}
		delta := mov.Quantity
		if mov.Type == entity.MovementTypeIn {
			delta = -mov.Quantity
		}
		if err := equipRepo.AdjustQuantity(mov.EquipmentID, delta); err != nil {
			return err
		}
		return movRepo.Delete(id)
	})
}
