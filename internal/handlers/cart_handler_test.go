// internal/handlers/cart_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tiendita/backend/internal/models"
	"github.com/tiendita/backend/internal/services"
	"github.com/tiendita/backend/internal/store"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	carts    *store.Collection[models.Cart]
	products *store.Collection[models.Product]
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dir := s.T().TempDir()
	s.carts = store.NewCollection[models.Cart](dir, "carts")
	s.products = store.NewCollection[models.Product](dir, "products")
	require.NoError(s.T(), s.carts.EnsureExists())
	require.NoError(s.T(), s.products.EnsureExists())

	productService := services.NewProductService(s.products)
	h := NewCartHandler(services.NewCartService(s.carts, productService))

	s.router = gin.New()
	api := s.router.Group("/api")
	api.POST("/carts", h.CreateCart)
	api.GET("/carts/:cid", h.GetCart)
	api.POST("/carts/:cid/product/:pid", h.AddProduct)
}

func (s *CartHandlerTestSuite) request(method, path string, body []byte) (*httptest.ResponseRecorder, apiResponse) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (s *CartHandlerTestSuite) TestCreateCart() {
	w, resp := s.request(http.MethodPost, "/api/carts", nil)

	assert.Equal(s.T(), http.StatusCreated, w.Code)
	var created models.Cart
	require.NoError(s.T(), json.Unmarshal(resp.Data, &created))
	assert.Equal(s.T(), 1, created.ID)
	assert.Empty(s.T(), created.Products)
}

func (s *CartHandlerTestSuite) TestAddProductDefaultQuantity() {
	require.NoError(s.T(), s.carts.ReplaceAll([]models.Cart{{ID: 1, Products: []models.CartLine{}}}))
	require.NoError(s.T(), s.products.ReplaceAll([]models.Product{{ID: 5}}))

	// Empty body means quantity one.
	w, resp := s.request(http.MethodPost, "/api/carts/1/product/5", nil)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var cart models.Cart
	require.NoError(s.T(), json.Unmarshal(resp.Data, &cart))
	require.Len(s.T(), cart.Products, 1)
	assert.Equal(s.T(), models.CartLine{ProductID: 5, Quantity: 1}, cart.Products[0])
}

func (s *CartHandlerTestSuite) TestAddProductExplicitQuantity() {
	require.NoError(s.T(), s.carts.ReplaceAll([]models.Cart{{ID: 1, Products: []models.CartLine{}}}))
	require.NoError(s.T(), s.products.ReplaceAll([]models.Product{{ID: 5}}))

	body, _ := json.Marshal(map[string]int{"quantity": 4})
	w, resp := s.request(http.MethodPost, "/api/carts/1/product/5", body)

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var cart models.Cart
	require.NoError(s.T(), json.Unmarshal(resp.Data, &cart))
	require.Len(s.T(), cart.Products, 1)
	assert.Equal(s.T(), 4, cart.Products[0].Quantity)
}

func (s *CartHandlerTestSuite) TestAddProductNegativeQuantity() {
	require.NoError(s.T(), s.carts.ReplaceAll([]models.Cart{{ID: 1, Products: []models.CartLine{}}}))
	require.NoError(s.T(), s.products.ReplaceAll([]models.Product{{ID: 5}}))

	body, _ := json.Marshal(map[string]int{"quantity": -2})
	w, resp := s.request(http.MethodPost, "/api/carts/1/product/5", body)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "BAD_REQUEST", resp.Error.Code)
}

func (s *CartHandlerTestSuite) TestAddProductUnknownProduct() {
	require.NoError(s.T(), s.carts.ReplaceAll([]models.Cart{{ID: 1, Products: []models.CartLine{}}}))

	w, resp := s.request(http.MethodPost, "/api/carts/1/product/99", nil)

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "NOT_FOUND_ERROR", resp.Error.Code)
	assert.Contains(s.T(), resp.Error.Message, "product 99 not found")
}

func (s *CartHandlerTestSuite) TestGetCartNotFound() {
	w, resp := s.request(http.MethodGet, "/api/carts/8", nil)

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "NOT_FOUND_ERROR", resp.Error.Code)
}

func TestCartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}
