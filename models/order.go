package models

import "time"

type CustomerInfo struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// Order is a placed pickup order. The money fields hold the server's own
// recomputation from the submitted line items, formatted to two decimals.
type Order struct {
	ID              int            `json:"id"`
	OrderNumber     string         `json:"orderNumber"`
	CustomerInfo    CustomerInfo   `json:"customerInfo"`
	Items           []CartLineItem `json:"items"`
	Subtotal        string         `json:"subtotal"`
	Tax             string         `json:"tax"`
	VeteranDonation string         `json:"veteranDonation"`
	Total           string         `json:"total"`
	PickupDate      string         `json:"pickupDate"`
	Notes           string         `json:"notes"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type Appointment struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
