package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada operación del motor
// devuelve uno de estos centinelas cuando falla una precondición; el handler
// HTTP los traduce a un código estable para que la UI pueda explicar el motivo.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Habitaciones
	ErrRoomOccupied    = errors.New("la habitación ya está ocupada")
	ErrRoomNotOccupied = errors.New("la habitación no está ocupada")
	ErrInvalidRange    = errors.New("rango de habitaciones inválido")

	// Comandas y cocina
	ErrOrderClosed       = errors.New("la comanda está cerrada")
	ErrInvalidTransition = errors.New("transición de estado no permitida")

	// Cuentas de bar y pagos
	ErrInvalidAmount = errors.New("importe inválido")

	// Inventario
	ErrDuplicateStock    = errors.New("ya existe stock para ese almacén y artículo")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Sesiones de caja
	ErrSessionAlreadyOpen = errors.New("ya hay una sesión de caja abierta para el departamento")
	ErrSessionNotOpen     = errors.New("la sesión de caja no está abierta")

	// Auth
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
