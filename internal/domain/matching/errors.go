package matching

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateSkill     = errors.New("duplicate skill")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
