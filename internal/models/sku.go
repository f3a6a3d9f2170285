// internal/models/sku.go
package models

// Sku is a stock-keeping unit. Thumbnail names an asset in asset storage;
// the asset exists if and only if the field is set.
type Sku struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Availability bool    `json:"availability"`
	Thumbnail    string  `json:"thumbnail,omitempty"`
}

func (s Sku) Identity() int { return s.ID }
