package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrAlreadyDeleted = errors.New("el recurso ya está en la papelera")
	ErrNothingToWrite = errors.New("el lote no tiene stock restante para dar de baja")
)
