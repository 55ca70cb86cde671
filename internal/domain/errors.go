package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidPeriod = errors.New("período inválido, formato esperado YYYY-MM")
	ErrUnauthorized  = errors.New("no autorizado")
)
