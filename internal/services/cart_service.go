// internal/services/cart_service.go
package services

import (
	"github.com/tiendita/backend/internal/apperr"
	"github.com/tiendita/backend/internal/models"
	"github.com/tiendita/backend/internal/store"
)

// CartService manages the cart collection. Product references are checked
// once, when a line is added; a later product deletion leaves the line
// dangling (advisory integrity).
type CartService struct {
	carts    Collection[models.Cart]
	products *ProductService
}

func NewCartService(carts Collection[models.Cart], products *ProductService) *CartService {
	return &CartService{carts: carts, products: products}
}

// Create always produces an empty cart; there is no free-form insert.
func (s *CartService) Create() (models.Cart, error) {
	var created models.Cart
	err := s.carts.Update(func(carts []models.Cart) ([]models.Cart, error) {
		created = models.Cart{
			ID:       store.NextID(carts),
			Products: []models.CartLine{},
		}
		return append(carts, created), nil
	})
	if err != nil {
		return models.Cart{}, err
	}
	return created, nil
}

func (s *CartService) GetAll() ([]models.Cart, error) {
	return s.carts.LoadAll()
}

func (s *CartService) GetByID(id int) (models.Cart, error) {
	carts, err := s.carts.LoadAll()
	if err != nil {
		return models.Cart{}, err
	}
	return findByID(carts, id, "cart")
}

// AddProduct adds quantity of a product to the cart, bumping the existing
// line instead of duplicating it. A non-positive quantity means 1.
func (s *CartService) AddProduct(cartID, productID, quantity int) (models.Cart, error) {
	if quantity <= 0 {
		quantity = 1
	}

	ok, err := refExists(func(id int) error {
		_, err := s.products.GetByID(id)
		return err
	}, productID)
	if err != nil {
		return models.Cart{}, err
	}
	if !ok {
		return models.Cart{}, apperr.NotFound("product %d not found", productID)
	}

	var updated models.Cart
	err = s.carts.Update(func(carts []models.Cart) ([]models.Cart, error) {
		i, err := indexByID(carts, cartID, "cart")
		if err != nil {
			return nil, err
		}

		cart := carts[i]
		lineIdx := -1
		for j, line := range cart.Products {
			if line.ProductID == productID {
				lineIdx = j
				break
			}
		}
		if lineIdx >= 0 {
			cart.Products[lineIdx].Quantity += quantity
		} else {
			cart.Products = append(cart.Products, models.CartLine{
				ProductID: productID,
				Quantity:  quantity,
			})
		}

		carts[i] = cart
		updated = cart
		return carts, nil
	})
	if err != nil {
		return models.Cart{}, err
	}
	return updated, nil
}
