package repositories

import (
	"context"
	"errors"
	"strings"
	"sync"

	"kgs-gunshop/models"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProductRepository serves the catalog from a process-lifetime in-memory map
// seeded at startup. The catalog is read-only at runtime.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string
}

func NewProductRepository() *ProductRepository {
	r := &ProductRepository{products: make(map[string]models.Product)}
	for _, p := range seedProducts {
		r.products[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

// GetAll returns every product in seed order.
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

// GetByID returns a single product or ErrNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// GetByCategory filters by category name, case-insensitively, keeping seed order.
func (r *ProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Product{}
	for _, id := range r.order {
		p := r.products[id]
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Categories lists the distinct category names in first-seen order.
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	out := []string{}
	for _, id := range r.order {
		c := r.products[id].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}
