// internal/services/product_service_test.go
package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendita/backend/internal/apperr"
	"github.com/tiendita/backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func strPtr(v string) *string     { return &v }

func validProductRequest() CreateProductRequest {
	return CreateProductRequest{
		Title:       "Mate cup",
		Description: "Handmade ceramic mate cup",
		Code:        "MAT-001",
		Price:       floatPtr(12.5),
		Stock:       intPtr(40),
		Category:    "kitchen",
	}
}

func TestProductInsertThenGetByIDRoundTrip(t *testing.T) {
	svc := NewProductService(seedCollection[models.Product](t, "products", nil))

	created, err := svc.Insert(validProductRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.True(t, created.Status, "status defaults to true")
	assert.Equal(t, []string{}, created.Thumbnails, "thumbnails default to empty")

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestProductInsertMissingCategory(t *testing.T) {
	col := seedCollection[models.Product](t, "products", nil)
	svc := NewProductService(col)

	req := validProductRequest()
	req.Category = ""

	_, err := svc.Insert(req)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "missing required fields")
	assert.Contains(t, err.Error(), "category")

	stored, err := col.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, stored, "a rejected insert must not touch the collection")
}

func TestProductGetAllLimit(t *testing.T) {
	seed := []models.Product{{ID: 1}, {ID: 2}, {ID: 3}}
	svc := NewProductService(seedCollection(t, "products", seed))

	all, err := svc.GetAll(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	two, err := svc.GetAll(2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, 1, two[0].ID)
	assert.Equal(t, 2, two[1].ID)

	capped, err := svc.GetAll(10)
	require.NoError(t, err)
	assert.Len(t, capped, 3, "limit beyond length returns everything")
}

func TestProductGetByIDNotFound(t *testing.T) {
	svc := NewProductService(seedCollection[models.Product](t, "products", nil))

	_, err := svc.GetByID(99)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, apperr.Status(err))
}

func TestProductUpdateMergesAndKeepsID(t *testing.T) {
	seed := []models.Product{{
		ID: 1, Title: "Old", Description: "d", Code: "C", Price: 5,
		Status: true, Stock: 3, Category: "misc", Thumbnails: []string{},
	}}
	svc := NewProductService(seedCollection(t, "products", seed))

	updated, err := svc.Update(1, UpdateProductRequest{
		Title:  strPtr("New"),
		Price:  floatPtr(9),
		Status: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, 9.0, updated.Price)
	assert.False(t, updated.Status)
	assert.Equal(t, "d", updated.Description, "untouched fields survive")
	assert.Equal(t, 3, updated.Stock)

	_, err = svc.Update(42, UpdateProductRequest{Title: strPtr("x")})
	assert.True(t, apperr.IsNotFound(err))
}

func TestProductDeleteThenInsertReusesFormerMaxID(t *testing.T) {
	seed := []models.Product{{ID: 1}, {ID: 2}, {ID: 3}}
	svc := NewProductService(seedCollection(t, "products", seed))

	require.NoError(t, svc.Delete(3))

	created, err := svc.Insert(validProductRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID, "id of the deleted former max is allocated again")
}

func TestProductDeleteNotFound(t *testing.T) {
	svc := NewProductService(seedCollection[models.Product](t, "products", nil))

	err := svc.Delete(7)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
