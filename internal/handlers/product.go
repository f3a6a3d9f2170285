// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiendita/backend/internal/realtime"
	"github.com/tiendita/backend/internal/services"
	"github.com/tiendita/backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	hub            *realtime.Hub
}

func NewProductHandler(productService *services.ProductService, hub *realtime.Hub) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		hub:            hub,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 0 {
			utils.BadRequestResponse(c, "invalid limit", nil)
			return
		}
		limit = n
	}

	products, err := h.productService.GetAll(limit)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, products)
}

// GET /products/:pid
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "pid")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, product)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	product, err := h.productService.Insert(req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	h.hub.Publish(realtime.Event{Type: realtime.EventProductInserted, Payload: product})
	utils.CreatedResponse(c, product)
}

// PUT /products/:pid
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "pid")
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	product, err := h.productService.Update(id, req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, product)
}

// DELETE /products/:pid
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "pid")
	if !ok {
		return
	}

	if err := h.productService.Delete(id); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	h.hub.Publish(realtime.Event{Type: realtime.EventProductDeleted, Payload: id})
	utils.SuccessResponse(c, nil)
}
