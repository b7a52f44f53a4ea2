package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// EquipmentHandler maneja listado y alta de equipos.
type EquipmentHandler struct {
	uc *usecase.EquipmentUseCase
}

// NewEquipmentHandler construye el handler de equipos.
func NewEquipmentHandler(uc *usecase.EquipmentUseCase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar equipos
// @Tags         equipment
// @Produce      json
// @Success      200  {array}   dto.EquipmentResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/equipment [get]
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al buscar equipos", Error: "DATABASE_ERROR"})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Agregar equipo
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipmentRequest  true  "name, description, quantity inicial"
// @Success      201   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/equipment [post]
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "cuerpo inválido"})
	}
	if _, err := h.uc.Create(in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al agregar equipo", Error: "DATABASE_ERROR"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Equipo agregado con éxito"})
}
