package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("order reference and status are required")
	ErrInvalidOrderRef       = errors.New("invalid order reference")
	ErrUndefinedStatus       = errors.New("undefined order status")
	ErrOrderNotFound         = errors.New("order not found")
)
