package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/api"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/config"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/repository"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/seed"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/service"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/migrations"
)

func connectDB(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("✅ Connected to DB %s", cfg.DBName)
				return db, nil
			}
		}
		log.Printf("❌ Retry %d: Failed to connect to DB %s (%s:%s): %v", i+1, cfg.DBName, cfg.DBHost, cfg.DBPort, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %v", cfg.DBName, cfg.DBHost, cfg.DBPort, err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrate(3, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	kafkaWriter := config.NewKafkaWriter("order-events")

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	if err := seed.Run(context.Background(), userRepo, productRepo); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	tokens := service.NewTokenManager(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokens)
	productService := service.NewProductService(productRepo, rdb)
	orderService := service.NewOrderService(orderRepo, userRepo, productService, kafkaWriter)

	authHandler := api.NewAuthHandler(authService)
	productHandler := api.NewProductHandler(productService)
	orderHandler := api.NewOrderHandler(orderService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	auth := api.RequireAuth(tokens.Secret())

	g := e.Group("/api")
	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)

	g.GET("/products", productHandler.List)
	g.GET("/products/:id", productHandler.GetByID)
	g.POST("/products", productHandler.Create, auth, api.RequireAdmin)
	g.PUT("/products/:id", productHandler.Update, auth, api.RequireAdmin)
	g.DELETE("/products/:id", productHandler.Delete, auth, api.RequireAdmin)

	g.GET("/orders/my", orderHandler.MyOrders, auth)
	g.GET("/orders", orderHandler.ListAll, auth, api.RequireAdmin)
	g.POST("/orders", orderHandler.Create, auth)
	g.PUT("/orders/:id/status", orderHandler.UpdateStatus, auth, api.RequireAdmin)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
