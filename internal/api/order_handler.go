package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// MyOrders lists the orders of the authenticated user --> GET /api/orders/my
func (h *OrderHandler) MyOrders(c echo.Context) error {
	claims := currentClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid token"})
	}

	orders, err := h.orderService.ListByUser(c.Request().Context(), claims.Email)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll returns the whole ledger, admin only --> GET /api/orders
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orderService.ListAll(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Create places an order for the authenticated user --> POST /api/orders
func (h *OrderHandler) Create(c echo.Context) error {
	claims := currentClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid token"})
	}

	req := createOrderRequest{}
	if err := c.Bind(&req); err != nil {
		return bindErrorResponse(c)
	}
	if errs := validateCreateOrder(&req); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	order, err := h.orderService.Create(c.Request().Context(), claims.Email, req.ProductID, req.Quantity)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

// UpdateStatus overwrites an order status, admin only --> PUT /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return bindErrorResponse(c)
	}

	req := updateStatusRequest{}
	if err := c.Bind(&req); err != nil {
		return bindErrorResponse(c)
	}

	status := entity.Status(strings.ToUpper(req.Status))
	order, err := h.orderService.UpdateStatus(c.Request().Context(), id, status)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, order)
}
