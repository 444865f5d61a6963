package repositories

import (
	"context"
	"errors"
	"testing"
)

func TestProductRepositorySeeded(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	products, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected a seeded catalog")
	}
	if products[0].ID != "1" {
		t.Errorf("expected seed order preserved, first id = %s", products[0].ID)
	}
}

func TestProductRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	p, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if p.Name == "" || p.Price == "" || p.Category == "" {
		t.Errorf("incomplete product record: %+v", p)
	}

	_, err = repo.GetByID(ctx, "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProductRepositoryGetByCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	handguns, err := repo.GetByCategory(ctx, "handguns")
	if err != nil {
		t.Fatalf("get by category: %v", err)
	}
	if len(handguns) == 0 {
		t.Fatal("expected case-insensitive category match")
	}
	for _, p := range handguns {
		if p.Category != "Handguns" {
			t.Errorf("wrong category in result: %+v", p)
		}
	}

	empty, err := repo.GetByCategory(ctx, "Snowboards")
	if err != nil || len(empty) != 0 {
		t.Errorf("expected empty result for unknown category, got %v items err=%v", len(empty), err)
	}
}

func TestProductRepositoryCategories(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	categories, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	seen := map[string]bool{}
	for _, c := range categories {
		if seen[c] {
			t.Errorf("duplicate category %s", c)
		}
		seen[c] = true
	}
	if !seen["Handguns"] || !seen["Ammunition"] {
		t.Errorf("expected seeded categories, got %v", categories)
	}
}
