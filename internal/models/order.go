// internal/models/order.go
package models

// Order holds sku lines keyed by sku id, one line per sku. OrderDate is an
// opaque caller-supplied string.
type Order struct {
	ID        int         `json:"id"`
	SkuList   []OrderLine `json:"skuList"`
	Customer  string      `json:"customer"`
	OrderDate string      `json:"orderDate"`
}

type OrderLine struct {
	SkuID    int `json:"skuId"`
	Quantity int `json:"quantity"`
}

func (o Order) Identity() int { return o.ID }
