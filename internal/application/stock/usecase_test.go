package stock_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos + TxRunner que ejecuta el callback sin BD.
// ──────────────────────────────────────────────────────────────────────────────

type fakeEquipmentRepo struct {
	items map[string]*entity.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[string]*entity.Equipment)}
}

func (r *fakeEquipmentRepo) Create(e *entity.Equipment) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEquipmentRepo) GetForUpdate(id string) (*entity.Equipment, error) {
	return r.GetByID(id)
}

func (r *fakeEquipmentRepo) List() ([]*entity.Equipment, error) {
	var list []*entity.Equipment
	for _, e := range r.items {
		cp := *e
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeEquipmentRepo) AdjustQuantity(id string, delta int) error {
	if e, ok := r.items[id]; ok {
		e.Quantity += delta
	}
	return nil
}

type fakeMovementRepo struct {
	items     map[string]*entity.StockMovement
	equipment *fakeEquipmentRepo // para resolver EquipmentName en listados
}

func newFakeMovementRepo(equipment *fakeEquipmentRepo) *fakeMovementRepo {
	return &fakeMovementRepo{items: make(map[string]*entity.StockMovement), equipment: equipment}
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovementRepo) ListWithEquipment() ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range r.items {
		cp := *m
		if e, _ := r.equipment.GetByID(m.EquipmentID); e != nil {
			cp.EquipmentName = e.Name
		}
		list = append(list, &cp)
	}
	// Mismo contrato que el repo real: más reciente primero.
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeTxRunner struct {
	movRepo   repository.StockMovementRepository
	equipRepo repository.EquipmentRepository
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	equipRepo repository.EquipmentRepository,
) error) error {
	return fn(t.movRepo, t.equipRepo)
}

func newLedger(t *testing.T) (*stock.LedgerUseCase, *fakeEquipmentRepo, *fakeMovementRepo) {
	t.Helper()
	equipRepo := newFakeEquipmentRepo()
	movRepo := newFakeMovementRepo(equipRepo)
	uc := stock.NewLedgerUseCase(&fakeTxRunner{movRepo: movRepo, equipRepo: equipRepo}, movRepo)
	return uc, equipRepo, movRepo
}

func seedEquipment(t *testing.T, repo *fakeEquipmentRepo, name string, quantity int) string {
	t.Helper()
	id := "eq-" + name
	now := time.Now()
	require.NoError(t, repo.Create(&entity.Equipment{
		ID: id, Name: name, Quantity: quantity, CreatedAt: now, UpdatedAt: now,
	}))
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

// Secuencia de referencia: crear con 10 → salida de 4 → cantidad 6 →
// eliminar el movimiento → cantidad 10 otra vez.
func TestLedger_SalidaYBorradoRestauranCantidad(t *testing.T) {
	uc, equipRepo, movRepo := newLedger(t)
	id := seedEquipment(t, equipRepo, "taladro", 10)

	movType, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		EquipmentID: id, Quantity: 4, Type: "out",
	})
	require.NoError(t, err)
	assert.Equal(t, "out", movType, "la confirmación debe devolver el tipo del movimiento")

	e, _ := equipRepo.GetByID(id)
	assert.Equal(t, 6, e.Quantity, "la salida de 4 debe dejar la cantidad en 6")

	movements, err := movRepo.ListWithEquipment()
	require.NoError(t, err)
	require.Len(t, movements, 1)

	require.NoError(t, uc.DeleteMovement(context.Background(), movements[0].ID))

	e, _ = equipRepo.GetByID(id)
	assert.Equal(t, 10, e.Quantity, "borrar la salida debe devolver la cantidad original")
}

// Una entrada y su borrado también deben dejar la cantidad exactamente como estaba.
func TestLedger_EntradaYBorradoRestauranCantidad(t *testing.T) {
	uc, equipRepo, movRepo := newLedger(t)
	id := seedEquipment(t, equipRepo, "monitor", 3)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		EquipmentID: id, Quantity: 7, Type: "in", Description: "compra",
	})
	require.NoError(t, err)

	e, _ := equipRepo.GetByID(id)
	assert.Equal(t, 10, e.Quantity)

	movements, _ := movRepo.ListWithEquipment()
	require.Len(t, movements, 1)
	require.NoError(t, uc.DeleteMovement(context.Background(), movements[0].ID))

	e, _ = equipRepo.GetByID(id)
	assert.Equal(t, 3, e.Quantity, "borrar la entrada debe quitar lo que sumó")
}

// Salida mayor al stock disponible → INSUFFICIENT_STOCK sin tocar nada.
func TestLedger_StockInsuficienteNoModificaNada(t *testing.T) {
	uc, equipRepo, movRepo := newLedger(t)
	id := seedEquipment(t, equipRepo, "router", 6)

	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		EquipmentID: id, Quantity: 100, Type: "out",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	e, _ := equipRepo.GetByID(id)
	assert.Equal(t, 6, e.Quantity, "la cantidad no debe cambiar al rechazar la salida")
	movements, _ := movRepo.ListWithEquipment()
	assert.Empty(t, movements, "no debe quedar ningún movimiento registrado")
}

// Campos faltantes → rechazo antes de tocar cualquier fila.
func TestLedger_CamposFaltantes(t *testing.T) {
	uc, equipRepo, movRepo := newLedger(t)
	id := seedEquipment(t, equipRepo, "switch", 5)

	cases := []struct {
		name string
		in   dto.RegisterMovementRequest
	}{
		{"sin tipo", dto.RegisterMovementRequest{EquipmentID: id, Quantity: 2}},
		{"sin equipo", dto.RegisterMovementRequest{Quantity: 2, Type: "in"}},
		{"sin cantidad", dto.RegisterMovementRequest{EquipmentID: id, Type: "in"}},
		{"tipo desconocido", dto.RegisterMovementRequest{EquipmentID: id, Quantity: 2, Type: "sideways"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterMovement(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
		})
	}

	e, _ := equipRepo.GetByID(id)
	assert.Equal(t, 5, e.Quantity)
	movements, _ := movRepo.ListWithEquipment()
	assert.Empty(t, movements)
}

// Equipo inexistente → EQUIPMENT_NOT_FOUND.
func TestLedger_EquipoInexistente(t *testing.T) {
	uc, _, _ := newLedger(t)
	_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		EquipmentID: "no-existe", Quantity: 1, Type: "in",
	})
	assert.ErrorIs(t, err, domain.ErrEquipmentNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListMovements / DeleteMovement
// ──────────────────────────────────────────────────────────────────────────────

// El listado sale más reciente primero y con el nombre del equipo.
func TestLedger_ListadoOrdenadoDescendente(t *testing.T) {
	uc, equipRepo, _ := newLedger(t)
	id := seedEquipment(t, equipRepo, "impresora", 100)

	for i := 0; i < 3; i++ {
		_, err := uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
			EquipmentID: id, Quantity: i + 1, Type: "in",
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // created_at distinto por movimiento
	}

	movements, err := uc.ListMovements()
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assert.Equal(t, 3, movements[0].Quantity, "el último registrado debe salir primero")
	assert.Equal(t, 1, movements[2].Quantity)
	for _, m := range movements {
		assert.Equal(t, "impresora", m.EquipmentName)
		assert.True(t, !m.CreatedAt.IsZero())
	}
	assert.True(t, movements[0].CreatedAt.After(movements[2].CreatedAt))
}

// Borrar un movimiento inexistente → NOT_FOUND.
func TestLedger_BorrarMovimientoInexistente(t *testing.T) {
	uc, _, _ := newLedger(t)
	err := uc.DeleteMovement(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}
