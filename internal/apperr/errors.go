// Package apperr defines the closed set of failures the services can report.
// The API layer maps each one to a transport status code.
package apperr

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrProductInUse       = errors.New("product is referenced by existing orders")
	ErrInvalidStatus      = errors.New("invalid order status")
)
