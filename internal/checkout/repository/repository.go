package repository

import (
	"sync"

	"github.com/stridewear/storefront/internal/checkout/domain"
)

// MemoryOrderRepository keeps placed orders in-process, newest last.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
	byID   map[string]int
}

// NewMemoryOrderRepository creates an empty order store.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{byID: make(map[string]int)}
}

func (r *MemoryOrderRepository) Save(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[order.ID] = len(r.orders)
	r.orders = append(r.orders, *order)
	return nil
}

func (r *MemoryOrderRepository) FindByID(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order := r.orders[i]
	return &order, nil
}

func (r *MemoryOrderRepository) ListBySession(sessionID string) []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			orders = append(orders, o)
		}
	}
	return orders
}
