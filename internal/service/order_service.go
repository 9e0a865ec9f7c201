package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/apperr"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
)

type OrderStore interface {
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]entity.Order, error)
	ListAll(ctx context.Context) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entity.Status) error
}

// OrderService places orders against catalog stock and tracks their status.
// Lifecycle events go to kafka when a writer is configured; a nil writer
// disables publishing.
type OrderService struct {
	orders      OrderStore
	users       UserStore
	products    *ProductService
	kafkaWriter *kafka.Writer
}

func NewOrderService(orders OrderStore, users UserStore, products *ProductService, kafkaWriter *kafka.Writer) *OrderService {
	return &OrderService{
		orders:      orders,
		users:       users,
		products:    products,
		kafkaWriter: kafkaWriter,
	}
}

// Create places an order for the user identified by email. The total price is
// computed once here from the current product price and never recomputed. The
// stock check below is advisory (it produces the availability message); the
// store's conditional decrement is what actually prevents overselling under
// concurrent orders.
func (s *OrderService) Create(ctx context.Context, userEmail string, productID int64, quantity int) (*entity.Order, error) {
	user, err := s.users.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Quantity < quantity {
		return nil, fmt.Errorf("%w: available %d", apperr.ErrInsufficientStock, product.Quantity)
	}

	order := &entity.Order{
		UserID:     user.ID,
		ProductID:  product.ID,
		Quantity:   quantity,
		TotalPrice: product.Price * float64(quantity),
		Status:     entity.StatusPending,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		logger.Error().Err(err).Int64("product_id", productID).Msg("Error creating order")
		return nil, err
	}

	s.products.invalidateProduct(ctx, product.ID)

	// Re-read the decremented row so the response carries the authoritative
	// stock count; the pre-check copy may come from a stale cache entry.
	fresh, err := s.products.GetByID(ctx, product.ID)
	if err != nil {
		logger.Error().Err(err).Int64("product_id", product.ID).Msg("Error re-reading product after order")
		product.Quantity -= quantity
		fresh = product
	}

	created.User = user
	created.Product = fresh

	s.publishOrderEvent(ctx, created, "created")
	return created, nil
}

func (s *OrderService) ListByUser(ctx context.Context, email string) ([]entity.Order, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByUserID(ctx, user.ID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]entity.Order, error) {
	return s.orders.ListAll(ctx)
}

// UpdateStatus replaces the order status with any valid enum member.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status entity.Status) (*entity.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", apperr.ErrInvalidStatus, status)
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		logger.Error().Err(err).Int64("order_id", id).Msg("Error updating order status")
		return nil, err
	}

	order.Status = status
	s.publishOrderEvent(ctx, order, "status-changed")
	return order, nil
}

// publishOrderEvent emits the order to the event topic. Publishing happens
// after the store write committed, so a broker failure is logged rather than
// surfaced to the caller.
func (s *OrderService) publishOrderEvent(ctx context.Context, order *entity.Order, key string) {
	if s.kafkaWriter == nil {
		return
	}

	orderJSON, err := json.Marshal(order)
	if err != nil {
		logger.Error().Err(err).Int64("order_id", order.ID).Msg("Error marshalling order event")
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%d", key, order.ID)),
		Value: orderJSON,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Int64("order_id", order.ID).Msg("Error publishing order event")
	}
}
