// internal/services/sku_service.go
package services

import (
	"github.com/sirupsen/logrus"

	"github.com/tiendita/backend/internal/assets"
	"github.com/tiendita/backend/internal/models"
	"github.com/tiendita/backend/internal/store"
	"github.com/tiendita/backend/internal/utils"
)

// SkuService manages the sku collection and the thumbnail asset lifecycle:
// an asset exists in asset storage if and only if some sku references it.
type SkuService struct {
	skus   Collection[models.Sku]
	assets assets.Store
	log    *logrus.Entry
}

type CreateSkuRequest struct {
	Name         string   `json:"name" validate:"required"`
	Price        *float64 `json:"price" validate:"required"`
	Availability string   `json:"availability" validate:"required"`
}

// UpdateSkuRequest carries a partial update; nil fields keep the stored
// value.
type UpdateSkuRequest struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	Availability *string  `json:"availability"`
}

func NewSkuService(skus Collection[models.Sku], assetStore assets.Store) *SkuService {
	return &SkuService{
		skus:   skus,
		assets: assetStore,
		log:    logrus.WithField("service", "sku"),
	}
}

func (s *SkuService) GetAll() ([]models.Sku, error) {
	return s.skus.LoadAll()
}

func (s *SkuService) GetByID(id int) (models.Sku, error) {
	skus, err := s.skus.LoadAll()
	if err != nil {
		return models.Sku{}, err
	}
	return findByID(skus, id, "sku")
}

// Insert creates a sku. thumbnail names an asset already saved to asset
// storage, or is empty; on any failure the asset is removed so no orphan
// survives.
func (s *SkuService) Insert(req CreateSkuRequest, thumbnail string) (models.Sku, error) {
	created, err := s.insert(req, thumbnail)
	if err != nil && thumbnail != "" {
		s.discardAsset(thumbnail)
	}
	return created, err
}

func (s *SkuService) insert(req CreateSkuRequest, thumbnail string) (models.Sku, error) {
	if err := requireFields(&req); err != nil {
		return models.Sku{}, err
	}
	available, err := utils.ParseFlexBool(req.Availability)
	if err != nil {
		return models.Sku{}, err
	}

	var created models.Sku
	err = s.skus.Update(func(skus []models.Sku) ([]models.Sku, error) {
		created = models.Sku{
			ID:           store.NextID(skus),
			Name:         req.Name,
			Price:        *req.Price,
			Availability: available,
			Thumbnail:    thumbnail,
		}
		return append(skus, created), nil
	})
	if err != nil {
		return models.Sku{}, err
	}
	return created, nil
}

// Update merges req over the stored sku. A non-empty thumbnail replaces
// the stored one; the previous asset is removed only after the record
// write succeeded and the name actually changed. On failure the newly
// uploaded asset is removed instead.
func (s *SkuService) Update(id int, req UpdateSkuRequest, thumbnail string) (models.Sku, error) {
	updated, previous, err := s.update(id, req, thumbnail)
	if err != nil {
		if thumbnail != "" {
			s.discardAsset(thumbnail)
		}
		return models.Sku{}, err
	}

	if thumbnail != "" && previous != "" && updated.Thumbnail != previous {
		if err := s.assets.Remove(previous); err != nil {
			s.log.WithError(err).WithField("asset", previous).Warn("failed to remove replaced asset")
		}
	}
	return updated, nil
}

func (s *SkuService) update(id int, req UpdateSkuRequest, thumbnail string) (updated models.Sku, previous string, err error) {
	err = s.skus.Update(func(skus []models.Sku) ([]models.Sku, error) {
		i, err := indexByID(skus, id, "sku")
		if err != nil {
			return nil, err
		}

		sku := skus[i]
		previous = sku.Thumbnail
		if req.Name != nil {
			sku.Name = *req.Name
		}
		if req.Price != nil {
			sku.Price = *req.Price
		}
		if req.Availability != nil {
			available, perr := utils.ParseFlexBool(*req.Availability)
			if perr != nil {
				return nil, perr
			}
			sku.Availability = available
		}
		if thumbnail != "" {
			sku.Thumbnail = thumbnail
		}

		skus[i] = sku
		updated = sku
		return skus, nil
	})
	return updated, previous, err
}

// Delete removes the sku and its thumbnail asset. The asset goes first;
// if its removal fails the record stays, keeping the
// record-implies-asset invariant.
func (s *SkuService) Delete(id int) error {
	return s.skus.Update(func(skus []models.Sku) ([]models.Sku, error) {
		i, err := indexByID(skus, id, "sku")
		if err != nil {
			return nil, err
		}
		if thumb := skus[i].Thumbnail; thumb != "" {
			if err := s.assets.Remove(thumb); err != nil {
				return nil, err
			}
		}
		return append(skus[:i], skus[i+1:]...), nil
	})
}

// discardAsset removes an uploaded asset on a failure path. The removal
// error is logged, never returned: the error already in flight is the one
// the caller must see.
func (s *SkuService) discardAsset(name string) {
	if err := s.assets.Remove(name); err != nil {
		s.log.WithError(err).WithField("asset", name).Warn("failed to remove orphaned asset")
	}
}
