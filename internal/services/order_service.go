// internal/services/order_service.go
package services

import (
	"github.com/tiendita/backend/internal/models"
	"github.com/tiendita/backend/internal/store"
)

// OrderService manages the order collection. Sku ids in order lines are
// accepted as-is; they are not checked against the sku collection.
type OrderService struct {
	orders Collection[models.Order]
}

type CreateOrderRequest struct {
	SkuList   []OrderLineInput `json:"skuList" validate:"required,min=1"`
	Customer  string           `json:"customer" validate:"required"`
	OrderDate string           `json:"orderDate" validate:"required"`
}

type OrderLineInput struct {
	SkuID    int `json:"skuId"`
	Quantity int `json:"quantity"`
}

func NewOrderService(orders Collection[models.Order]) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) GetAll() ([]models.Order, error) {
	return s.orders.LoadAll()
}

func (s *OrderService) GetByID(id int) (models.Order, error) {
	orders, err := s.orders.LoadAll()
	if err != nil {
		return models.Order{}, err
	}
	return findByID(orders, id, "order")
}

func (s *OrderService) Insert(req CreateOrderRequest) (models.Order, error) {
	if err := requireFields(&req); err != nil {
		return models.Order{}, err
	}

	lines := make([]models.OrderLine, len(req.SkuList))
	for i, line := range req.SkuList {
		lines[i] = models.OrderLine{SkuID: line.SkuID, Quantity: line.Quantity}
	}

	var created models.Order
	err := s.orders.Update(func(orders []models.Order) ([]models.Order, error) {
		created = models.Order{
			ID:        store.NextID(orders),
			SkuList:   lines,
			Customer:  req.Customer,
			OrderDate: req.OrderDate,
		}
		return append(orders, created), nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return created, nil
}

// AddSku adds quantity of a sku to the order, bumping the existing line
// instead of duplicating it. A non-positive quantity means 1.
func (s *OrderService) AddSku(orderID, skuID, quantity int) (models.Order, error) {
	if quantity <= 0 {
		quantity = 1
	}

	var updated models.Order
	err := s.orders.Update(func(orders []models.Order) ([]models.Order, error) {
		i, err := indexByID(orders, orderID, "order")
		if err != nil {
			return nil, err
		}

		order := orders[i]
		lineIdx := -1
		for j, line := range order.SkuList {
			if line.SkuID == skuID {
				lineIdx = j
				break
			}
		}
		if lineIdx >= 0 {
			order.SkuList[lineIdx].Quantity += quantity
		} else {
			order.SkuList = append(order.SkuList, models.OrderLine{
				SkuID:    skuID,
				Quantity: quantity,
			})
		}

		orders[i] = order
		updated = order
		return orders, nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return updated, nil
}

func (s *OrderService) Delete(id int) error {
	return s.orders.Update(func(orders []models.Order) ([]models.Order, error) {
		i, err := indexByID(orders, id, "order")
		if err != nil {
			return nil, err
		}
		return append(orders[:i], orders[i+1:]...), nil
	})
}
