package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/apperr"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db}
}

const productColumns = `id, name, description, price, quantity, category, image_url, updated_at`

func scanProduct(row *sql.Row) (*entity.Product, error) {
	p := &entity.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Category, &p.ImageURL, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	return r.queryProducts(ctx, query)
}

func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = ?`
	return r.queryProducts(ctx, query, category)
}

// SearchByName matches a case-insensitive substring of the product name.
func (r *ProductRepository) SearchByName(ctx context.Context, term string) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE LOWER(name) LIKE CONCAT('%', LOWER(?), '%')`
	return r.queryProducts(ctx, query, term)
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		p := entity.Product{}
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Category, &p.ImageURL, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `INSERT INTO products (name, description, price, quantity, category, image_url, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.Name, product.Description, product.Price, product.Quantity, product.Category, product.ImageURL, product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	product.ID = id
	return product, nil
}

// Update overwrites every mutable field. Existence is checked by the caller;
// RowsAffected cannot be used here because MySQL reports zero rows when the
// replacement writes identical values.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `UPDATE products SET name = ?, description = ?, price = ?, quantity = ?, category = ?, image_url = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, product.Name, product.Description, product.Price, product.Quantity, product.Category, product.ImageURL, product.UpdatedAt, product.ID)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a product permanently. Deletion is restricted while any order
// still references the product.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	var referenced int
	query := `SELECT COUNT(*) FROM orders WHERE product_id = ?`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&referenced); err != nil {
		return err
	}
	if referenced > 0 {
		return apperr.ErrProductInUse
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
