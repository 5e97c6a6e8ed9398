package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrEstablishmentNotFound = errors.New("establecimiento no encontrado")
	ErrProductNotFound       = errors.New("producto no encontrado")
	ErrOrderNotFound         = errors.New("pedido no encontrado")
	ErrPaymentMethodNotFound = errors.New("método de pago no encontrado")
	ErrStatusNotFound        = errors.New("status no encontrado")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrEstablishmentExists   = errors.New("el establecimiento ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrImportFileNotFound    = errors.New("archivo de importación no encontrado")
	ErrLocked                = errors.New("operación en curso para el mismo recurso")
)
