// internal/services/product_service.go
package services

import (
	"github.com/tiendita/backend/internal/models"
	"github.com/tiendita/backend/internal/store"
)

// ProductService manages the product collection.
type ProductService struct {
	products Collection[models.Product]
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Code        string   `json:"code" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Status      *bool    `json:"status"`
	Stock       *int     `json:"stock" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Thumbnails  []string `json:"thumbnails"`
}

// UpdateProductRequest carries a partial update; nil fields keep the
// stored value. The id is immutable.
type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Code        *string  `json:"code"`
	Price       *float64 `json:"price"`
	Status      *bool    `json:"status"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

func NewProductService(products Collection[models.Product]) *ProductService {
	return &ProductService{products: products}
}

// GetAll returns every product in stored order, or the first limit
// products when limit > 0.
func (s *ProductService) GetAll(limit int) ([]models.Product, error) {
	products, err := s.products.LoadAll()
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products, nil
}

func (s *ProductService) GetByID(id int) (models.Product, error) {
	products, err := s.products.LoadAll()
	if err != nil {
		return models.Product{}, err
	}
	return findByID(products, id, "product")
}

func (s *ProductService) Insert(req CreateProductRequest) (models.Product, error) {
	if err := requireFields(&req); err != nil {
		return models.Product{}, err
	}

	status := true
	if req.Status != nil {
		status = *req.Status
	}
	thumbnails := req.Thumbnails
	if thumbnails == nil {
		thumbnails = []string{}
	}

	var created models.Product
	err := s.products.Update(func(products []models.Product) ([]models.Product, error) {
		created = models.Product{
			ID:          store.NextID(products),
			Title:       req.Title,
			Description: req.Description,
			Code:        req.Code,
			Price:       *req.Price,
			Status:      status,
			Stock:       *req.Stock,
			Category:    req.Category,
			Thumbnails:  thumbnails,
		}
		return append(products, created), nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return created, nil
}

func (s *ProductService) Update(id int, req UpdateProductRequest) (models.Product, error) {
	var updated models.Product
	err := s.products.Update(func(products []models.Product) ([]models.Product, error) {
		i, err := indexByID(products, id, "product")
		if err != nil {
			return nil, err
		}

		p := products[i]
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Code != nil {
			p.Code = *req.Code
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Thumbnails != nil {
			p.Thumbnails = req.Thumbnails
		}

		products[i] = p
		updated = p
		return products, nil
	})
	if err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

func (s *ProductService) Delete(id int) error {
	return s.products.Update(func(products []models.Product) ([]models.Product, error) {
		i, err := indexByID(products, id, "product")
		if err != nil {
			return nil, err
		}
		return append(products[:i], products[i+1:]...), nil
	})
}
