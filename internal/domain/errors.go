package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingFields     = errors.New("faltan campos obligatorios")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrWrongPassword     = errors.New("contraseña incorrecta")
	ErrEmailInUse        = errors.New("el email ya está en uso")
	ErrEquipmentNotFound = errors.New("equipo no encontrado")
	ErrMovementNotFound  = errors.New("movimiento no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
