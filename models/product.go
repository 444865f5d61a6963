package models

// Product is a catalog record. Price travels as a decimal string on the wire
// to match the storefront representation; arithmetic never happens on the
// float form.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          string   `json:"price"`
	Category       string   `json:"category"`
	Image          string   `json:"image"`
	Specifications []string `json:"specifications"`
	InStock        bool     `json:"inStock"`
}

// Summary projects the fields the cart captures at add-time.
func (p Product) Summary() ProductSummary {
	return ProductSummary{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
	}
}
