package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	EquipmentUC *usecase.EquipmentUseCase
	LedgerUC    *stock.LedgerUseCase
}

// Router registra las rutas de la API.
// Todas las rutas son públicas: el protocolo es sin sesión y el control de
// acceso vive en el cliente (ver pkg/apiclient). No es una frontera de seguridad.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Post("/register", authHandler.Register)

	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/users", userHandler.List)
	api.Put("/users/:id", userHandler.Update)
	api.Delete("/users/:id", userHandler.Delete)

	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	api.Get("/equipment", equipmentHandler.List)
	api.Post("/equipment", equipmentHandler.Create)

	stockHandler := NewStockHandler(deps.LedgerUC)
	api.Get("/stock", stockHandler.List)
	api.Post("/stock", stockHandler.Register)
	api.Delete("/stock/:id", stockHandler.Delete)
}
