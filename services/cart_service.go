package services

import (
	"context"

	"kgs-gunshop/models"
	"kgs-gunshop/repositories"
)

// CartService is the single mutation path for session carts. Every operation
// loads the cart, applies one of the cart's own mutations, saves it back and
// notifies observers with the fresh snapshot.
type CartService struct {
	repo repositories.CartRepository
	hub  *CartHub
}

func NewCartService(repo repositories.CartRepository, hub *CartHub) *CartService {
	return &CartService{repo: repo, hub: hub}
}

// Hub exposes the observer hub for the WebSocket surface.
func (s *CartService) Hub() *CartHub {
	return s.hub
}

func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(*models.Cart)) (models.CartView, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return models.CartView{}, err
	}
	fn(&cart)
	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return models.CartView{}, err
	}
	view := cart.View()
	if s.hub != nil {
		s.hub.Publish(ctx, sessionID, view)
	}
	return view, nil
}

// Get returns the current snapshot without mutating anything.
func (s *CartService) Get(ctx context.Context, sessionID string) (models.CartView, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return models.CartView{}, err
	}
	return cart.View(), nil
}

// AddItem adds the product as quantity single-unit adds. A quantity below 1
// is treated as 1.
func (s *CartService) AddItem(ctx context.Context, sessionID string, p models.ProductSummary, quantity int) (models.CartView, error) {
	if quantity < 1 {
		quantity = 1
	}
	return s.mutate(ctx, sessionID, func(c *models.Cart) {
		for i := 0; i < quantity; i++ {
			c.AddItem(p)
		}
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (models.CartView, error) {
	return s.mutate(ctx, sessionID, func(c *models.Cart) {
		c.UpdateQuantity(itemID, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (models.CartView, error) {
	return s.mutate(ctx, sessionID, func(c *models.Cart) {
		c.RemoveItem(itemID)
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (models.CartView, error) {
	return s.mutate(ctx, sessionID, func(c *models.Cart) {
		c.Clear()
	})
}

func (s *CartService) Open(ctx context.Context, sessionID string) (models.CartView, error) {
	return s.mutate(ctx, sessionID, func(c *models.Cart) {
		c.Open()
	})
}

func (s *CartService) Close(ctx context.Context, sessionID string) (models.CartView, error) {
	return s.mutate(ctx, sessionID, func(c *models.Cart) {
		c.Close()
	})
}

func (s *CartService) Toggle(ctx context.Context, sessionID string) (models.CartView, error) {
	return s.mutate(ctx, sessionID, func(c *models.Cart) {
		c.Toggle()
	})
}
