package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// StockHandler maneja el libro de movimientos de stock.
type StockHandler struct {
	uc *stock.LedgerUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *stock.LedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar entrada o salida de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "equipment_id, quantity, type (in|out), description opcional"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	movType, err := h.uc.RegisterMovement(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Equipo, cantidad y tipo son obligatorios", Error: "MISSING_REQUIRED_FIELDS"})
		}
		if errors.Is(err, domain.ErrEquipmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Equipo no encontrado", Error: "EQUIPMENT_NOT_FOUND"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cantidad insuficiente en stock", Error: "INSUFFICIENT_STOCK"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al registrar movimiento", Error: "REGISTRATION_ERROR"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{Message: "Movimiento registrado con éxito", Type: movType})
}

// List godoc
// @Summary      Listar movimientos de stock
// @Description  Movimientos con el nombre del equipo, más reciente primero.
// @Tags         stock
// @Produce      json
// @Success      200  {array}   dto.MovementResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	movements, err := h.uc.ListMovements()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al buscar movimientos", Error: "DATABASE_ERROR"})
	}
	return c.JSON(movements)
}

// Delete godoc
// @Summary      Eliminar movimiento de stock
// @Description  Aplica el delta compensatorio a la cantidad del equipo y elimina el movimiento.
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.DeleteMovement(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMovementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Movimiento no encontrado", Error: "NOT_FOUND"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al eliminar movimiento", Error: "DELETE_ERROR"})
	}
	return c.JSON(dto.MessageResponse{Message: "Movimiento eliminado con éxito"})
}
