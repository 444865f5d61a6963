package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func glock() ProductSummary {
	return ProductSummary{
		ID:       "1",
		Name:     "Glock 19 Gen 5",
		Price:    "599.99",
		Image:    "/images/glock-19.jpg",
		Category: "Handguns",
	}
}

func TestAddItemNewLine(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(glock())

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", cart.Items[0].Quantity)
	}
	if cart.TotalItems() != 1 {
		t.Errorf("expected totalItems 1, got %d", cart.TotalItems())
	}
	if got := cart.Subtotal().String(); got != "599.99" {
		t.Errorf("expected subtotal 599.99, got %s", got)
	}
}

func TestAddItemMergesSameID(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(glock())
	cart.AddItem(glock())

	if len(cart.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
	if cart.TotalItems() != 2 {
		t.Errorf("expected totalItems 2, got %d", cart.TotalItems())
	}
	if got := cart.Subtotal().String(); got != "1199.98" {
		t.Errorf("expected subtotal 1199.98, got %s", got)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(glock())
	cart.AddItem(glock())

	cart.UpdateQuantity("1", 1)

	if cart.Items[0].Quantity != 1 {
		t.Errorf("expected quantity back to 1, got %d", cart.Items[0].Quantity)
	}
	if got := cart.Subtotal().String(); got != "599.99" {
		t.Errorf("expected subtotal 599.99, got %s", got)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(glock())

	cart.UpdateQuantity("1", 0)

	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Items))
	}
	if cart.TotalItems() != 0 {
		t.Errorf("expected totalItems 0, got %d", cart.TotalItems())
	}
	if !cart.Subtotal().IsZero() {
		t.Errorf("expected subtotal 0, got %s", cart.Subtotal())
	}
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(glock())
	cart.UpdateQuantity("1", -3)

	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Items))
	}
}

func TestMissingIDIsNoOp(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(glock())

	cart.UpdateQuantity("does-not-exist", 5)
	cart.RemoveItem("does-not-exist")

	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Errorf("cart changed by operations on a missing id: %+v", cart.Items)
	}
}

func TestRemoveItemKeepsOrder(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(ProductSummary{ID: "a", Name: "A", Price: "10.00"})
	cart.AddItem(ProductSummary{ID: "b", Name: "B", Price: "20.00"})
	cart.AddItem(ProductSummary{ID: "c", Name: "C", Price: "30.00"})

	cart.RemoveItem("b")

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Items))
	}
	if cart.Items[0].ID != "a" || cart.Items[1].ID != "c" {
		t.Errorf("insertion order not preserved: %+v", cart.Items)
	}
}

func TestSubtotalRecomputedAfterEveryMutation(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(ProductSummary{ID: "a", Name: "A", Price: "10.00"})
	cart.AddItem(ProductSummary{ID: "b", Name: "B", Price: "20.00"})

	if got := cart.Subtotal().String(); got != "30" {
		t.Fatalf("expected subtotal 30, got %s", got)
	}

	cart.UpdateQuantity("a", 3)
	if got := cart.Subtotal().String(); got != "50" {
		t.Errorf("expected subtotal 50 after update, got %s", got)
	}

	cart.RemoveItem("b")
	if got := cart.Subtotal().String(); got != "30" {
		t.Errorf("expected subtotal 30 after remove, got %s", got)
	}
}

func TestClearEmptiesCartButNotVisibility(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(glock())
	cart.Open()

	cart.Clear()

	if len(cart.Items) != 0 || cart.TotalItems() != 0 || !cart.Subtotal().IsZero() {
		t.Errorf("clear did not empty the cart: %+v", cart)
	}
	if !cart.IsOpen {
		t.Error("clear must not touch the visibility flag")
	}
}

func TestVisibilityStateMachine(t *testing.T) {
	cart := &Cart{}
	if cart.IsOpen {
		t.Fatal("cart must start closed")
	}
	cart.Open()
	if !cart.IsOpen {
		t.Error("Open did not open the cart")
	}
	cart.Close()
	if cart.IsOpen {
		t.Error("Close did not close the cart")
	}
	cart.Toggle()
	if !cart.IsOpen {
		t.Error("Toggle from closed should open")
	}
	cart.Toggle()
	if cart.IsOpen {
		t.Error("Toggle from open should close")
	}
}

func TestRepeatedAdditionsDoNotDrift(t *testing.T) {
	cart := &Cart{}
	for i := 0; i < 100; i++ {
		cart.AddItem(ProductSummary{ID: "ammo", Name: "9mm FMJ", Price: "0.10"})
	}
	if got := cart.Subtotal().String(); got != "10" {
		t.Errorf("expected exact subtotal 10 after 100 adds of 0.10, got %s", got)
	}
}

func TestViewFormatsAtDisplayTimeOnly(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(ProductSummary{ID: "a", Name: "A", Price: "10.00"})
	cart.AddItem(ProductSummary{ID: "b", Name: "B", Price: "20.00"})

	// tax is exactly 2.475 internally and only the view rounds it
	wantTax := decimal.RequireFromString("2.475")
	if !Tax(cart.Subtotal()).Equal(wantTax) {
		t.Errorf("expected exact tax 2.475, got %s", Tax(cart.Subtotal()))
	}

	view := cart.View()
	if view.Subtotal != "30.00" {
		t.Errorf("expected subtotal 30.00, got %s", view.Subtotal)
	}
	if view.Tax != "2.48" {
		t.Errorf("expected displayed tax 2.48, got %s", view.Tax)
	}
	if view.Total != "32.48" {
		t.Errorf("expected displayed total 32.48, got %s", view.Total)
	}
	if view.TotalItems != 2 {
		t.Errorf("expected totalItems 2, got %d", view.TotalItems)
	}
}

func TestViewEmptyCartHasItemsArray(t *testing.T) {
	cart := &Cart{}
	view := cart.View()
	if view.Items == nil {
		t.Error("view of an empty cart must carry an empty array, not null")
	}
	if view.Subtotal != "0.00" || view.Tax != "0.00" || view.Total != "0.00" {
		t.Errorf("expected zero money fields, got %+v", view)
	}
}
