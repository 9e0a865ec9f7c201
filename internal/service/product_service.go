package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
)

type ProductStore interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]entity.Product, error)
	SearchByName(ctx context.Context, term string) ([]entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

// ProductInput is the full set of mutable product fields. Create and Update
// both take the whole input; Update is a full replace, not a patch.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	Category    string
	ImageURL    string
}

// ProductService manages the catalog. Reads by id go through a redis
// read-through cache when a client is configured; a nil client disables
// caching.
type ProductService struct {
	products ProductStore
	rdb      *redis.Client
}

func NewProductService(products ProductStore, rdb *redis.Client) *ProductService {
	return &ProductService{products: products, rdb: rdb}
}

func productCacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

// List applies at most one filter: a search term wins over a category, and
// with neither the whole catalog is returned.
func (s *ProductService) List(ctx context.Context, category, search string) ([]entity.Product, error) {
	if search != "" {
		return s.products.SearchByName(ctx, search)
	}
	if category != "" {
		return s.products.ListByCategory(ctx, category)
	}
	return s.products.List(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, productCacheKey(id)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Int64("product_id", id).Msg("Error reading product cache")
		}
		if cached != "" {
			product := &entity.Product{}
			if err := json.Unmarshal([]byte(cached), product); err == nil {
				return product, nil
			}
			logger.Warn().Int64("product_id", id).Msg("Dropping malformed product cache entry")
		}
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheProduct(ctx, product)
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		UpdatedAt:   time.Now(),
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}

	return created, nil
}

// Update overwrites every mutable field and refreshes the update timestamp.
func (s *ProductService) Update(ctx context.Context, id int64, input ProductInput) (*entity.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Quantity = input.Quantity
	product.Category = input.Category
	product.ImageURL = input.ImageURL
	product.UpdatedAt = time.Now()

	updated, err := s.products.Update(ctx, product)
	if err != nil {
		logger.Error().Err(err).Int64("product_id", id).Msg("Error updating product")
		return nil, err
	}

	s.invalidateProduct(ctx, id)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateProduct(ctx, id)
	return nil
}

func (s *ProductService) cacheProduct(ctx context.Context, product *entity.Product) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(product)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, productCacheKey(product.ID), data, 0).Err(); err != nil {
		logger.Error().Err(err).Int64("product_id", product.ID).Msg("Error writing product cache")
	}
}

func (s *ProductService) invalidateProduct(ctx context.Context, id int64) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, productCacheKey(id)).Err(); err != nil {
		logger.Error().Err(err).Int64("product_id", id).Msg("Error invalidating product cache")
	}
}
