package models

type AddCartItemRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Image    string `json:"image"`
	Category string `json:"category"`
	// Quantity above 1 is applied as that many single-unit adds.
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}

func (r AddCartItemRequest) Summary() ProductSummary {
	return ProductSummary{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Image:    r.Image,
		Category: r.Category,
	}
}

type UpdateCartItemRequest struct {
	// Pointer so an explicit zero binds; zero and below remove the line.
	Quantity *int `json:"quantity" binding:"required"`
}

type OrderRequest struct {
	CustomerInfo    CustomerInfo   `json:"customerInfo" binding:"required"`
	Items           []CartLineItem `json:"items" binding:"required,min=1"`
	Subtotal        string         `json:"subtotal"`
	Tax             string         `json:"tax"`
	VeteranDonation string         `json:"veteranDonation"`
	Total           string         `json:"total"`
	PickupDate      string         `json:"pickupDate"`
	Notes           string         `json:"notes"`
	Status          string         `json:"status"`
}

type AppointmentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Notes   string `json:"notes"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
