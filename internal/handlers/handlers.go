// internal/handlers/handlers.go
package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiendita/backend/internal/utils"
)

// parseIDParam reads a positive integer path parameter, responding 400
// itself when the value is unusable.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.BadRequestResponse(c, fmt.Sprintf("invalid %s", name), nil)
		return 0, false
	}
	return id, true
}

// quantityBody is the optional JSON body of the add-line endpoints.
type quantityBody struct {
	Quantity int `json:"quantity"`
}

// parseQuantity reads the optional {"quantity": n} body; absent or empty
// bodies mean the default of 1.
func parseQuantity(c *gin.Context) (int, bool) {
	if c.Request.ContentLength == 0 {
		return 1, true
	}
	var body quantityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return 0, false
	}
	if body.Quantity < 0 {
		utils.BadRequestResponse(c, "quantity must not be negative", nil)
		return 0, false
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}
	return body.Quantity, true
}
