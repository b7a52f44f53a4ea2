package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación de EquipmentRepository sobre PostgreSQL (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador de equipos. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// Create persiste un nuevo equipo con su cantidad inicial.
func (r *EquipmentRepo) Create(equipment *entity.Equipment) error {
	query := `
		INSERT INTO equipment (id, name, description, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.Name, equipment.Description, equipment.Quantity,
		equipment.CreatedAt, equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *EquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	query := `
		SELECT id, name, description, quantity, created_at, updated_at
		FROM equipment WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get equipment")
}

// GetForUpdate obtiene el equipo y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *EquipmentRepo) GetForUpdate(id string) (*entity.Equipment, error) {
	query := `
		SELECT id, name, description, quantity, created_at, updated_at
		FROM equipment WHERE id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get equipment for update")
}

func (r *EquipmentRepo) scanOne(row pgx.Row, op string) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}

// List lista todos los equipos.
func (r *EquipmentRepo) List() ([]*entity.Equipment, error) {
	query := `
		SELECT id, name, description, quantity, created_at, updated_at
		FROM equipment ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		var e entity.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Quantity, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// AdjustQuantity suma delta (positivo o negativo) a la cantidad cacheada del equipo.
func (r *EquipmentRepo) AdjustQuantity(id string, delta int) error {
	query := `
		UPDATE equipment SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust equipment quantity: %w", err)
	}
	return nil
}
