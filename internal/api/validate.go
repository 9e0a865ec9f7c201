package api

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError is one boundary validation failure, reported per field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateRegister(req *registerRequest) []FieldError {
	var errs []FieldError
	username := strings.TrimSpace(req.Username)
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		errs = append(errs, FieldError{"username", "username must be 3-50 characters"})
	}
	if !emailPattern.MatchString(req.Email) {
		errs = append(errs, FieldError{"email", "invalid email format"})
	}
	if len(req.Password) < 6 {
		errs = append(errs, FieldError{"password", "password must be at least 6 characters"})
	}
	return errs
}

func validateLogin(req *loginRequest) []FieldError {
	var errs []FieldError
	if !emailPattern.MatchString(req.Email) {
		errs = append(errs, FieldError{"email", "invalid email format"})
	}
	if req.Password == "" {
		errs = append(errs, FieldError{"password", "password is required"})
	}
	return errs
}

func validateProduct(req *productRequest) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, FieldError{"name", "product name is required"})
	} else if utf8.RuneCountInString(req.Name) > 100 {
		errs = append(errs, FieldError{"name", "product name must be at most 100 characters"})
	}
	if req.Price <= 0 {
		errs = append(errs, FieldError{"price", "price must be positive"})
	}
	if req.Quantity < 0 {
		errs = append(errs, FieldError{"quantity", "quantity cannot be negative"})
	}
	if utf8.RuneCountInString(req.Category) > 50 {
		errs = append(errs, FieldError{"category", "category must be at most 50 characters"})
	}
	return errs
}

func validateCreateOrder(req *createOrderRequest) []FieldError {
	var errs []FieldError
	if req.ProductID <= 0 {
		errs = append(errs, FieldError{"productId", "productId is required"})
	}
	if req.Quantity <= 0 {
		errs = append(errs, FieldError{"quantity", "quantity must be positive"})
	}
	return errs
}
