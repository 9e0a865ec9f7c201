package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

func (req *productRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
}

// List returns the catalog, filtered by search term or category --> GET /api/products
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("search"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// GetByID returns one product --> GET /api/products/:id
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return bindErrorResponse(c)
	}

	product, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// Create adds a product to the catalog --> POST /api/products
func (h *ProductHandler) Create(c echo.Context) error {
	req := productRequest{}
	if err := c.Bind(&req); err != nil {
		return bindErrorResponse(c)
	}
	if errs := validateProduct(&req); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	product, err := h.productService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

// Update replaces every mutable field of a product --> PUT /api/products/:id
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return bindErrorResponse(c)
	}

	req := productRequest{}
	if err := c.Bind(&req); err != nil {
		return bindErrorResponse(c)
	}
	if errs := validateProduct(&req); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	product, err := h.productService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product --> DELETE /api/products/:id
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return bindErrorResponse(c)
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
