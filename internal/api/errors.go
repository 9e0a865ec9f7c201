package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/apperr"
)

// errorResponse maps the service error taxonomy to a transport status code.
// Anything outside the taxonomy is a server error.
func errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrUserNotFound),
		errors.Is(err, apperr.ErrProductNotFound),
		errors.Is(err, apperr.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrEmailTaken),
		errors.Is(err, apperr.ErrUsernameTaken),
		errors.Is(err, apperr.ErrInsufficientStock),
		errors.Is(err, apperr.ErrProductInUse):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrInvalidStatus):
		status = http.StatusBadRequest
	}

	return c.JSON(status, map[string]string{"error": err.Error()})
}

func validationResponse(c echo.Context, errs []FieldError) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": errs})
}

func bindErrorResponse(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
}
