package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("booking not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrDuplicateNumber   = errors.New("booking number already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
)
