package inventory

import "errors"

// Errors reported by the registry and the input parsers. They are always
// wrapped with some context, use errors.Is to test them.
var (
	ErrDuplicateCode     = errors.New("product code already exists")
	ErrDuplicateName     = errors.New("product name already exists")
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidInput      = errors.New("invalid input")
	ErrPersistence       = errors.New("persistence failure")
)
