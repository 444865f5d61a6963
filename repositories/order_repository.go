package repositories

import (
	"context"
	"fmt"
	"sync"

	"kgs-gunshop/models"
)

// OrderRepository keeps placed orders in memory for the life of the process.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
	nextID int
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]models.Order), nextID: 1001}
}

// Create assigns the id and order number and stores the order.
func (r *OrderRepository) Create(ctx context.Context, o models.Order) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.nextID
	o.OrderNumber = fmt.Sprintf("ORD-%d", o.ID)
	r.nextID++
	r.orders[o.OrderNumber] = o
	return o, nil
}

// GetByNumber retrieves an order by its order number.
func (r *OrderRepository) GetByNumber(ctx context.Context, number string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[number]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return o, nil
}

// List returns all orders placed since startup.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}
