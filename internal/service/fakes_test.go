package service

import (
	"context"
	"strings"
	"sync"

	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/apperr"
	"github.com/giuseppevitello83-a11y/fullstack-portfolio/internal/entity"
)

// In-memory stores standing in for the MySQL repositories. They return copies
// so callers cannot mutate stored rows, matching database semantics.

type memUserStore struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]entity.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[int64]entity.User{}}
}

func (s *memUserStore) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, apperr.ErrUserNotFound
}

func (s *memUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	user.ID = s.seq
	s.users[user.ID] = *user
	cp := *user
	return &cp, nil
}

func (s *memUserStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}

type memProductStore struct {
	mu       sync.Mutex
	seq      int64
	products map[int64]entity.Product
	orders   *memOrderStore // set when delete-restrict matters
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: map[int64]entity.Product{}}
}

func (s *memProductStore) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, apperr.ErrProductNotFound
	}
	cp := p
	return &cp, nil
}

func (s *memProductStore) List(ctx context.Context) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Product{}
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *memProductStore) ListByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memProductStore) SearchByName(ctx context.Context, term string) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memProductStore) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	product.ID = s.seq
	s.products[product.ID] = *product
	cp := *product
	return &cp, nil
}

func (s *memProductStore) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return nil, apperr.ErrProductNotFound
	}
	s.products[product.ID] = *product
	cp := *product
	return &cp, nil
}

func (s *memProductStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return apperr.ErrProductNotFound
	}
	if s.orders != nil && s.orders.references(id) {
		return apperr.ErrProductInUse
	}
	delete(s.products, id)
	return nil
}

func (s *memProductStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products), nil
}

// decrement mirrors the repository's conditional stock decrement.
func (s *memProductStore) decrement(id int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok || p.Quantity < quantity {
		return apperr.ErrInsufficientStock
	}
	p.Quantity -= quantity
	s.products[id] = p
	return nil
}

type memOrderStore struct {
	mu       sync.Mutex
	seq      int64
	orders   map[int64]entity.Order
	products *memProductStore
}

func newMemOrderStore(products *memProductStore) *memOrderStore {
	s := &memOrderStore{orders: map[int64]entity.Order{}, products: products}
	if products != nil {
		products.orders = s
	}
	return s
}

func (s *memOrderStore) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if err := s.products.decrement(order.ProductID, order.Quantity); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	order.ID = s.seq
	s.orders[order.ID] = *order
	cp := *order
	return &cp, nil
}

func (s *memOrderStore) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, apperr.ErrOrderNotFound
	}
	cp := o
	return &cp, nil
}

func (s *memOrderStore) ListByUserID(ctx context.Context, userID int64) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *memOrderStore) ListAll(ctx context.Context) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Order{}
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *memOrderStore) UpdateStatus(ctx context.Context, id int64, status entity.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return apperr.ErrOrderNotFound
	}
	o.Status = status
	s.orders[id] = o
	return nil
}

func (s *memOrderStore) references(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ProductID == productID {
			return true
		}
	}
	return false
}
