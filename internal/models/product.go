// internal/models/product.go
package models

// Product is a catalog entry. Code is caller-supplied and not enforced
// unique; Status defaults to true on insert.
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Status      bool     `json:"status"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

func (p Product) Identity() int { return p.ID }
