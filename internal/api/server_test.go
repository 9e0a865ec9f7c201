package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/service"
)

// testServer wires the handlers onto an echo instance with the same route and
// middleware layout the binary uses.
type testServer struct {
	e        *echo.Echo
	users    *stubUserStore
	products *stubProductStore
	orders   *stubOrderStore
	tokens   *service.TokenManager
	admin    *entity.User
	user     *entity.User
	product  *entity.Product
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	users := newStubUserStore()
	products := newStubProductStore()
	orders := newStubOrderStore(products)
	tokens := service.NewTokenManager("test-secret")

	authService := service.NewAuthService(users, tokens)
	productService := service.NewProductService(products, nil)
	orderService := service.NewOrderService(orders, users, productService, nil)

	authHandler := NewAuthHandler(authService)
	productHandler := NewProductHandler(productService)
	orderHandler := NewOrderHandler(orderService)

	e := echo.New()
	auth := RequireAuth(tokens.Secret())

	g := e.Group("/api")
	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)

	g.GET("/products", productHandler.List)
	g.GET("/products/:id", productHandler.GetByID)
	g.POST("/products", productHandler.Create, auth, RequireAdmin)
	g.PUT("/products/:id", productHandler.Update, auth, RequireAdmin)
	g.DELETE("/products/:id", productHandler.Delete, auth, RequireAdmin)

	g.GET("/orders/my", orderHandler.MyOrders, auth)
	g.GET("/orders", orderHandler.ListAll, auth, RequireAdmin)
	g.POST("/orders", orderHandler.Create, auth)
	g.PUT("/orders/:id/status", orderHandler.UpdateStatus, auth, RequireAdmin)

	s := &testServer{e: e, users: users, products: products, orders: orders, tokens: tokens}

	ctx := context.Background()
	admin, err := users.Create(ctx, &entity.User{Username: "admin", Email: "admin@portfolio.com", Password: "hash", Role: entity.RoleAdmin})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	user, err := users.Create(ctx, &entity.User{Username: "mario", Email: "mario@example.com", Password: "hash", Role: entity.RoleUser})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	product, err := products.Create(ctx, &entity.Product{Name: "MacBook Pro M3", Price: 2299.00, Quantity: 15, Category: "Electronics"})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}

	s.admin, s.user, s.product = admin, user, product
	return s
}

func (s *testServer) token(t *testing.T, u *entity.User) string {
	t.Helper()
	token, err := s.tokens.Generate(u)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// do performs a request against the test server. An empty token leaves the
// Authorization header unset.
func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}
