package models

import "github.com/shopspring/decimal"

// ProductSummary is the slice of a catalog product captured when it is added
// to the cart. Name, price and image are frozen at add-time and are not
// re-fetched from the catalog afterwards.
type ProductSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type CartLineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// Cart holds the shopping cart for one session. Line items keep insertion
// order and there is at most one line per product id. IsOpen is the slider
// visibility flag; it lives next to the items but is independent of them.
type Cart struct {
	Items  []CartLineItem `json:"items"`
	IsOpen bool           `json:"isOpen"`
}

// AddItem puts one unit of the product into the cart. If a line with the
// same id already exists its quantity goes up by one, otherwise a new line
// is appended with quantity 1.
func (c *Cart) AddItem(p ProductSummary) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartLineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
		Quantity: 1,
	})
}

// UpdateQuantity sets the quantity of an existing line. A target of zero or
// below removes the line entirely. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line with the given id if present.
func (c *Cart) RemoveItem(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. The visibility flag is left alone.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of all line quantities, recomputed on every call.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity over all lines. Prices are
// decimal strings at the boundary and are parsed to exact decimals here, so
// repeated additions do not drift. Rounding happens only at display time.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		price, _ := decimal.NewFromString(item.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

func (c *Cart) Open() {
	c.IsOpen = true
}

func (c *Cart) Close() {
	c.IsOpen = false
}

func (c *Cart) Toggle() {
	c.IsOpen = !c.IsOpen
}

// CartView is the cart as rendered to API clients: the raw lines plus the
// derived figures, formatted to two decimals.
type CartView struct {
	Items      []CartLineItem `json:"items"`
	TotalItems int            `json:"totalItems"`
	Subtotal   string         `json:"subtotal"`
	Tax        string         `json:"tax"`
	Total      string         `json:"total"`
	IsOpen     bool           `json:"isOpen"`
}

// View builds the display snapshot of the cart.
func (c *Cart) View() CartView {
	subtotal := c.Subtotal()
	items := c.Items
	if items == nil {
		items = []CartLineItem{}
	}
	return CartView{
		Items:      items,
		TotalItems: c.TotalItems(),
		Subtotal:   subtotal.StringFixed(2),
		Tax:        Tax(subtotal).StringFixed(2),
		Total:      subtotal.Add(Tax(subtotal)).StringFixed(2),
		IsOpen:     c.IsOpen,
	}
}
