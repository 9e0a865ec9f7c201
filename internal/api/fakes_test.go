package api

import (
	"context"
	"strings"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/apperr"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
)

// Minimal in-memory stores backing the handler tests.

type stubUserStore struct {
	seq   int64
	users map[int64]entity.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: map[int64]entity.User{}}
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, apperr.ErrUserNotFound
}

func (s *stubUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	return err == nil, nil
}

func (s *stubUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserStore) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	s.seq++
	user.ID = s.seq
	s.users[user.ID] = *user
	cp := *user
	return &cp, nil
}

type stubProductStore struct {
	seq      int64
	products map[int64]entity.Product
}

func newStubProductStore() *stubProductStore {
	return &stubProductStore{products: map[int64]entity.Product{}}
}

func (s *stubProductStore) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, apperr.ErrProductNotFound
	}
	cp := p
	return &cp, nil
}

func (s *stubProductStore) List(ctx context.Context) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductStore) ListByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductStore) SearchByName(ctx context.Context, term string) ([]entity.Product, error) {
	out := []entity.Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductStore) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	s.seq++
	product.ID = s.seq
	s.products[product.ID] = *product
	cp := *product
	return &cp, nil
}

func (s *stubProductStore) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if _, ok := s.products[product.ID]; !ok {
		return nil, apperr.ErrProductNotFound
	}
	s.products[product.ID] = *product
	cp := *product
	return &cp, nil
}

func (s *stubProductStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.products[id]; !ok {
		return apperr.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

type stubOrderStore struct {
	seq      int64
	orders   map[int64]entity.Order
	products *stubProductStore
}

func newStubOrderStore(products *stubProductStore) *stubOrderStore {
	return &stubOrderStore{orders: map[int64]entity.Order{}, products: products}
}

func (s *stubOrderStore) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	p, ok := s.products.products[order.ProductID]
	if !ok || p.Quantity < order.Quantity {
		return nil, apperr.ErrInsufficientStock
	}
	p.Quantity -= order.Quantity
	s.products.products[order.ProductID] = p

	s.seq++
	order.ID = s.seq
	s.orders[order.ID] = *order
	cp := *order
	return &cp, nil
}

func (s *stubOrderStore) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, apperr.ErrOrderNotFound
	}
	cp := o
	return &cp, nil
}

func (s *stubOrderStore) ListByUserID(ctx context.Context, userID int64) ([]entity.Order, error) {
	out := []entity.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderStore) ListAll(ctx context.Context) ([]entity.Order, error) {
	out := []entity.Order{}
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *stubOrderStore) UpdateStatus(ctx context.Context, id int64, status entity.Status) error {
	o, ok := s.orders[id]
	if !ok {
		return apperr.ErrOrderNotFound
	}
	o.Status = status
	s.orders[id] = o
	return nil
}
