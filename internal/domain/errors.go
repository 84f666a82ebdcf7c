package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrUsernameAlreadyExists  = errors.New("el nombre de usuario ya está registrado")
	ErrOrderNumberExists      = errors.New("el número de orden ya existe")
	ErrSKUAlreadyExists       = errors.New("el SKU ya existe")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrInvalidRole            = errors.New("rol desconocido")
	ErrInvalidStatus          = errors.New("estado desconocido")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrInactiveUser           = errors.New("cuenta inactiva")
	ErrConflict               = errors.New("conflicto con el estado actual")
)
