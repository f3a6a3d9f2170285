// internal/apperr/errors_test.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("missing required fields: title"), http.StatusBadRequest},
		{"not found", NotFound("product %d not found", 9), http.StatusNotFound},
		{"storage", Storage("read products collection", errors.New("boom")), http.StatusInternalServerError},
		{"asset", Asset("remove asset x.png", errors.New("boom")), http.StatusInternalServerError},
		{"untagged", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("context: %w", NotFound("cart 3 not found")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Storage("write skus collection", cause)

	assert.Equal(t, "write skus collection: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NotFound("sku 4 not found")
	assert.Equal(t, "sku 4 not found", bare.Error())
}

func TestKindPredicates(t *testing.T) {
	require.True(t, IsNotFound(NotFound("gone")))
	require.False(t, IsNotFound(Validation("bad")))
	require.True(t, IsValidation(Validation("bad")))
	require.False(t, IsValidation(errors.New("plain")))

	assert.Equal(t, KindValidation, KindOf(Validation("bad")))
	assert.Equal(t, KindStorage, KindOf(errors.New("plain")))
}
