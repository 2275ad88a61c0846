package domain

import "errors"

// Сентинельные ошибки доменного слоя. Контроллеры маппят их в HTTP статусы:
// ErrValidation -> 400, ErrNotFound -> 404, ErrForbidden -> 403, остальное -> 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("access denied")
)
