// internal/models/cart.go
package models

// Cart holds product lines keyed by product id, one line per product.
type Cart struct {
	ID       int        `json:"id"`
	Products []CartLine `json:"products"`
}

type CartLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (c Cart) Identity() int { return c.ID }
