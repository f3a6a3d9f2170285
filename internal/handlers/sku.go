// internal/handlers/sku.go
package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiendita/backend/internal/assets"
	"github.com/tiendita/backend/internal/services"
	"github.com/tiendita/backend/internal/utils"
)

// SkuHandler accepts multipart forms: the sku fields plus an optional
// "file" part holding the thumbnail image. The upload is saved to asset
// storage before the service runs; the service owns the cleanup of that
// asset on failure.
type SkuHandler struct {
	skuService    *services.SkuService
	assetStore    assets.Store
	maxUploadSize int64
}

func NewSkuHandler(skuService *services.SkuService, assetStore assets.Store, maxUploadMB int64) *SkuHandler {
	return &SkuHandler{
		skuService:    skuService,
		assetStore:    assetStore,
		maxUploadSize: maxUploadMB * 1024 * 1024,
	}
}

// GET /skus
func (h *SkuHandler) GetSkus(c *gin.Context) {
	skus, err := h.skuService.GetAll()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, skus)
}

// GET /skus/:id
func (h *SkuHandler) GetSku(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sku, err := h.skuService.GetByID(id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, sku)
}

// POST /skus
func (h *SkuHandler) CreateSku(c *gin.Context) {
	req := services.CreateSkuRequest{
		Name:         c.PostForm("name"),
		Availability: c.PostForm("availability"),
	}
	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.BadRequestResponse(c, "invalid price", nil)
			return
		}
		req.Price = &price
	}

	thumbnail, ok := h.saveUpload(c)
	if !ok {
		return
	}

	sku, err := h.skuService.Insert(req, thumbnail)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, sku)
}

// PUT /skus/:id
func (h *SkuHandler) UpdateSku(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateSkuRequest
	if v, exists := c.GetPostForm("name"); exists {
		req.Name = &v
	}
	if v, exists := c.GetPostForm("price"); exists {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			utils.BadRequestResponse(c, "invalid price", nil)
			return
		}
		req.Price = &price
	}
	if v, exists := c.GetPostForm("availability"); exists {
		req.Availability = &v
	}

	thumbnail, ok := h.saveUpload(c)
	if !ok {
		return
	}

	sku, err := h.skuService.Update(id, req, thumbnail)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, sku)
}

// DELETE /skus/:id
func (h *SkuHandler) DeleteSku(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.skuService.Delete(id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, nil)
}

// saveUpload stores the optional "file" part under a unique name and
// returns that name; empty when no file was sent. Responds itself on
// failure.
func (h *SkuHandler) saveUpload(c *gin.Context) (string, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		// No file part is fine; the thumbnail is optional.
		return "", true
	}
	if header.Size > h.maxUploadSize {
		utils.BadRequestResponse(c, fmt.Sprintf("file exceeds maximum size of %d bytes", h.maxUploadSize), nil)
		return "", false
	}

	src, err := header.Open()
	if err != nil {
		utils.InternalErrorResponse(c, "failed to read uploaded file")
		return "", false
	}
	defer src.Close()

	name := assets.UniqueName(header.Filename)
	if err := h.assetStore.Save(name, src); err != nil {
		utils.AppErrorResponse(c, err)
		return "", false
	}
	return name, true
}
