// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tiendita/backend/internal/services"
	"github.com/tiendita/backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// POST /carts
func (h *CartHandler) CreateCart(c *gin.Context) {
	cart, err := h.cartService.Create()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, cart)
}

// GET /carts/:cid
func (h *CartHandler) GetCart(c *gin.Context) {
	id, ok := parseIDParam(c, "cid")
	if !ok {
		return
	}

	cart, err := h.cartService.GetByID(id)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, cart)
}

// POST /carts/:cid/product/:pid
func (h *CartHandler) AddProduct(c *gin.Context) {
	cartID, ok := parseIDParam(c, "cid")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "pid")
	if !ok {
		return
	}
	quantity, ok := parseQuantity(c)
	if !ok {
		return
	}

	cart, err := h.cartService.AddProduct(cartID, productID, quantity)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, cart)
}
