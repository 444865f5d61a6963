package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"kgs-gunshop/models"
	"kgs-gunshop/repositories"
)

var (
	ErrInvalidDonation = errors.New("donation must be a non-negative amount")
	ErrInvalidQuantity = errors.New("every line item needs a quantity of at least 1")
	ErrInvalidPrice    = errors.New("every line item needs a valid decimal price")
)

// OrderService turns a checkout submission into a stored order. Money fields
// submitted by the client are ignored; subtotal, tax and total are recomputed
// from the line items so the stored figures always satisfy the pricing rules.
type OrderService struct {
	repo  *repositories.OrderRepository
	email *models.EmailService
}

// NewOrderService wires the order store and an optional email service.
// A nil email service simply skips confirmation mail.
func NewOrderService(repo *repositories.OrderRepository, email *models.EmailService) *OrderService {
	return &OrderService{repo: repo, email: email}
}

func (s *OrderService) PlaceOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return models.Order{}, ErrInvalidQuantity
		}
		if _, err := decimal.NewFromString(item.Price); err != nil {
			return models.Order{}, ErrInvalidPrice
		}
	}

	donation := decimal.Zero
	if req.VeteranDonation != "" {
		d, err := decimal.NewFromString(req.VeteranDonation)
		if err != nil || d.IsNegative() {
			return models.Order{}, ErrInvalidDonation
		}
		donation = d
	}

	cart := models.Cart{Items: req.Items}
	subtotal := cart.Subtotal()
	tax := models.Tax(subtotal)
	total := models.OrderTotal(subtotal, donation)

	order := models.Order{
		CustomerInfo:    req.CustomerInfo,
		Items:           req.Items,
		Subtotal:        subtotal.StringFixed(2),
		Tax:             tax.StringFixed(2),
		VeteranDonation: donation.StringFixed(2),
		Total:           total.StringFixed(2),
		PickupDate:      req.PickupDate,
		Notes:           req.Notes,
		Status:          "pending",
		CreatedAt:       time.Now(),
	}

	order, err := s.repo.Create(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	if s.email != nil {
		go func(o models.Order) {
			if err := s.email.SendOrderConfirmationEmail(o.CustomerInfo.Email, o.OrderNumber, models.FormatUSD(total), o.PickupDate); err != nil {
				log.Println("Failed to send order confirmation email:", err)
			}
		}(order)
	}

	return order, nil
}

func (s *OrderService) GetByNumber(ctx context.Context, number string) (models.Order, error) {
	return s.repo.GetByNumber(ctx, number)
}
