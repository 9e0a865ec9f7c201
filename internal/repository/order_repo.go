package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/apperr"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db}
}

// Create inserts the order and decrements the product stock in one
// transaction. The decrement is conditional on enough stock remaining, so two
// concurrent orders can never drive the quantity below zero: the slower one
// sees zero affected rows and fails without writing anything.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	stockQuery := `UPDATE products SET quantity = quantity - ? WHERE id = ? AND quantity >= ?`
	res, err := tx.ExecContext(ctx, stockQuery, order.Quantity, order.ProductID, order.Quantity)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if affected == 0 {
		tx.Rollback()
		return nil, apperr.ErrInsufficientStock
	}

	orderQuery := `INSERT INTO orders (user_id, product_id, quantity, total_price, status) VALUES (?, ?, ?, ?, ?)`
	ins, err := tx.ExecContext(ctx, orderQuery, order.UserID, order.ProductID, order.Quantity, order.TotalPrice, order.Status)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	id, err := ins.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	order.ID = id
	return order, nil
}

const orderSelect = `
	SELECT o.id, o.user_id, o.product_id, o.quantity, o.total_price, o.status,
	       u.id, u.username, u.email, u.role,
	       p.id, p.name, p.description, p.price, p.quantity, p.category, p.image_url, p.updated_at
	FROM orders o
	JOIN users u ON u.id = o.user_id
	JOIN products p ON p.id = o.product_id`

func scanOrder(scan func(dest ...interface{}) error) (*entity.Order, error) {
	o := &entity.Order{User: &entity.User{}, Product: &entity.Product{}}
	err := scan(
		&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.TotalPrice, &o.Status,
		&o.User.ID, &o.User.Username, &o.User.Email, &o.User.Role,
		&o.Product.ID, &o.Product.Name, &o.Product.Description, &o.Product.Price,
		&o.Product.Quantity, &o.Product.Category, &o.Product.ImageURL, &o.Product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	row := r.db.QueryRowContext(ctx, orderSelect+` WHERE o.id = ?`, id)
	order, err := scanOrder(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID int64) ([]entity.Order, error) {
	return r.queryOrders(ctx, orderSelect+` WHERE o.user_id = ?`, userID)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	return r.queryOrders(ctx, orderSelect)
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []entity.Order{}
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

// UpdateStatus overwrites the status unconditionally. Existence is checked by
// the caller; RowsAffected cannot be used here because MySQL reports zero rows
// when the new status equals the old one.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status entity.Status) error {
	_, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}
