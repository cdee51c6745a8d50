package inventory

import "errors"

// Callers classify failures with errors.Is against these.
var (
	ErrValidation        = errors.New("invalid product data")
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
