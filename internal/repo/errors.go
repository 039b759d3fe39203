package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuantityChange is returned when an adjustment would take stock below zero.
	ErrInvalidQuantityChange = errors.New("quantity cannot be negative")
	// ErrDuplicatedValueUnique is returned when a product title is already registered.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)
