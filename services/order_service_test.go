package services

import (
	"context"
	"errors"
	"testing"

	"kgs-gunshop/models"
	"kgs-gunshop/repositories"
)

func orderRequest() models.OrderRequest {
	return models.OrderRequest{
		CustomerInfo: models.CustomerInfo{
			FirstName: "John",
			LastName:  "Carter",
			Email:     "john@example.com",
			Phone:     "555-0100",
			Address:   "100 Main St",
		},
		Items: []models.CartLineItem{
			{ID: "a", Name: "A", Price: "10.00", Quantity: 1},
			{ID: "b", Name: "B", Price: "20.00", Quantity: 1},
		},
		PickupDate: "2026-09-05",
	}
}

func TestPlaceOrderRecomputesTotals(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repositories.NewOrderRepository(), nil)

	req := orderRequest()
	// client-sent money fields are ignored in favor of the server's own math
	req.Subtotal = "1.00"
	req.Tax = "0.01"
	req.Total = "1.01"

	order, err := svc.PlaceOrder(ctx, req)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if order.Subtotal != "30.00" {
		t.Errorf("expected subtotal 30.00, got %s", order.Subtotal)
	}
	if order.Tax != "2.48" {
		t.Errorf("expected tax 2.48, got %s", order.Tax)
	}
	if order.Total != "32.48" {
		t.Errorf("expected total 32.48, got %s", order.Total)
	}
	if order.Status != "pending" {
		t.Errorf("expected status pending, got %s", order.Status)
	}
	if order.OrderNumber == "" {
		t.Error("expected an order number")
	}
}

func TestPlaceOrderWithDonation(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repositories.NewOrderRepository(), nil)

	req := orderRequest()
	req.VeteranDonation = "5.00"

	order, err := svc.PlaceOrder(ctx, req)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.VeteranDonation != "5.00" {
		t.Errorf("expected donation 5.00, got %s", order.VeteranDonation)
	}
	if order.Total != "37.48" {
		t.Errorf("expected total 37.48, got %s", order.Total)
	}
}

func TestPlaceOrderRejectsNegativeDonation(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repositories.NewOrderRepository(), nil)

	req := orderRequest()
	req.VeteranDonation = "-1.00"

	if _, err := svc.PlaceOrder(ctx, req); !errors.Is(err, ErrInvalidDonation) {
		t.Errorf("expected ErrInvalidDonation, got %v", err)
	}

	req.VeteranDonation = "not-a-number"
	if _, err := svc.PlaceOrder(ctx, req); !errors.Is(err, ErrInvalidDonation) {
		t.Errorf("expected ErrInvalidDonation for junk input, got %v", err)
	}
}

func TestPlaceOrderRejectsZeroQuantityLines(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repositories.NewOrderRepository(), nil)

	req := orderRequest()
	req.Items[0].Quantity = 0

	if _, err := svc.PlaceOrder(ctx, req); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestPlaceOrderRejectsUnparsablePrices(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repositories.NewOrderRepository(), nil)

	req := orderRequest()
	req.Items[0].Price = "not-a-price"

	if _, err := svc.PlaceOrder(ctx, req); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestGetByNumber(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(repositories.NewOrderRepository(), nil)

	order, err := svc.PlaceOrder(ctx, orderRequest())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	got, err := svc.GetByNumber(ctx, order.OrderNumber)
	if err != nil {
		t.Fatalf("get by number: %v", err)
	}
	if got.CustomerInfo.Email != "john@example.com" {
		t.Errorf("unexpected order: %+v", got)
	}

	if _, err := svc.GetByNumber(ctx, "ORD-0"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
