package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"kgs-gunshop/models"
)

// CartRepository stores one cart per storefront session.
type CartRepository interface {
	// Get returns the session's cart, or an empty cart when none exists yet.
	Get(ctx context.Context, sessionID string) (models.Cart, error)
	Save(ctx context.Context, sessionID string, cart models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryCartRepository keeps carts in a mutex-guarded map. This is the
// backend used when Redis is not configured; carts live for the process
// lifetime only.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string]models.Cart)}
}

func (r *MemoryCartRepository) Get(ctx context.Context, sessionID string) (models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[sessionID]
	if !ok {
		return models.Cart{}, nil
	}
	// copy the slice so callers never mutate stored state directly
	items := make([]models.CartLineItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return cart, nil
}

func (r *MemoryCartRepository) Save(ctx context.Context, sessionID string, cart models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]models.CartLineItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	r.carts[sessionID] = cart
	return nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

// cartTTL bounds how long an abandoned Redis cart sticks around.
const cartTTL = 72 * time.Hour

// RedisCartRepository stores each cart as JSON under "cart:<session>".
type RedisCartRepository struct {
	client *redis.Client
}

func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *RedisCartRepository) Get(ctx context.Context, sessionID string) (models.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return models.Cart{}, nil
	}
	if err != nil {
		return models.Cart{}, err
	}
	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(sessionID), data, cartTTL).Err()
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKey(sessionID)).Err()
}
