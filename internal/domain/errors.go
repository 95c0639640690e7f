package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa HTTP los traduce a dto.ErrorResponse; ninguno debe tumbar el proceso.
var (
	ErrResourceUnavailable = errors.New("recurso no disponible")
	ErrValidationFailed    = errors.New("validación fallida")
	ErrNotFound            = errors.New("pedido no encontrado")
	ErrPastOrderLocked     = errors.New("el pedido tiene fecha de entrega pasada y no se puede modificar")
	ErrPersistence         = errors.New("no se pudo guardar en el almacenamiento local")
	ErrMalformedImport     = errors.New("archivo de importación inválido")
	ErrUnauthorized        = errors.New("credenciales inválidas")
	ErrNoSession           = errors.New("no hay sesión activa")
)
