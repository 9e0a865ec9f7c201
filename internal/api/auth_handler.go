package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string      `json:"token"`
	Type     string      `json:"type"`
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
}

func newAuthResponse(res *service.AuthResult) authResponse {
	return authResponse{
		Token:    res.Token,
		Type:     "Bearer",
		ID:       res.User.ID,
		Username: res.User.Username,
		Email:    res.User.Email,
		Role:     res.User.Role,
	}
}

// Register creates a new account --> POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	req := registerRequest{}
	if err := c.Bind(&req); err != nil {
		return bindErrorResponse(c)
	}
	if errs := validateRegister(&req); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	res, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, newAuthResponse(res))
}

// Login exchanges credentials for a token --> POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	req := loginRequest{}
	if err := c.Bind(&req); err != nil {
		return bindErrorResponse(c)
	}
	if errs := validateLogin(&req); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, newAuthResponse(res))
}
