// Package seed fills an empty store with the demo accounts and catalog the
// frontend expects on first boot. A store with existing rows is left alone.
package seed

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type userStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
}

type productStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
}

func Run(ctx context.Context, users userStore, products productStore) error {
	if err := seedUsers(ctx, users); err != nil {
		return err
	}
	return seedProducts(ctx, products)
}

func seedUsers(ctx context.Context, users userStore) error {
	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	accounts := []struct {
		username, email, password string
		role                      entity.Role
	}{
		{"admin", "admin@portfolio.com", "admin123", entity.RoleAdmin},
		{"mario", "mario@example.com", "mario123", entity.RoleUser},
	}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = users.Create(ctx, &entity.User{
			Username: a.username,
			Email:    a.email,
			Password: string(hash),
			Role:     a.role,
		})
		if err != nil {
			return err
		}
	}

	logger.Info().Msg("✅ Users seeded: admin@portfolio.com / admin123")
	return nil
}

func seedProducts(ctx context.Context, products productStore) error {
	n, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	catalog := []entity.Product{
		{
			Name:        "MacBook Pro M3",
			Description: `Laptop Apple da 14" con chip M3, 16GB RAM, 512GB SSD`,
			Price:       2299.00,
			Quantity:    15,
			Category:    "Electronics",
		},
		{
			Name:        "Nike Air Max 2024",
			Description: "Scarpe da running con ammortizzazione Air Max Next",
			Price:       189.99,
			Quantity:    50,
			Category:    "Footwear",
		},
		{
			Name:        `Samsung 4K OLED 55"`,
			Description: "Smart TV OLED Ultra HD con HDR10+ e Dolby Atmos",
			Price:       1499.00,
			Quantity:    8,
			Category:    "Electronics",
		},
		{
			Name:        "Sony WH-1000XM5",
			Description: "Cuffie wireless con cancellazione attiva del rumore leader di settore",
			Price:       349.00,
			Quantity:    25,
			Category:    "Electronics",
		},
		{
			Name:        "Dyson V15 Detect",
			Description: "Aspirapolvere senza filo con laser per rilevare polvere invisibile",
			Price:       749.00,
			Quantity:    12,
			Category:    "Home Appliances",
		},
		{
			Name:        "LEGO Technic Ferrari",
			Description: "Set tecnico Ferrari SF90 Stradale, 1677 pezzi",
			Price:       219.99,
			Quantity:    30,
			Category:    "Toys",
		},
	}

	now := time.Now()
	for i := range catalog {
		catalog[i].UpdatedAt = now
		if _, err := products.Create(ctx, &catalog[i]); err != nil {
			return err
		}
	}

	logger.Info().Msg("✅ Products seeded: 6 sample products added")
	return nil
}
