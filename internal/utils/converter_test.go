// internal/utils/converter_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendita/backend/internal/apperr"
)

func TestParseFlexBool(t *testing.T) {
	trueLiterals := []string{"true", "on", "yes", "1", "TRUE", " Yes "}
	for _, v := range trueLiterals {
		got, err := ParseFlexBool(v)
		require.NoError(t, err, "literal %q", v)
		assert.True(t, got, "literal %q", v)
	}

	falseLiterals := []string{"false", "off", "no", "0", "FALSE", " No "}
	for _, v := range falseLiterals {
		got, err := ParseFlexBool(v)
		require.NoError(t, err, "literal %q", v)
		assert.False(t, got, "literal %q", v)
	}
}

func TestParseFlexBoolRejectsUnknownLiterals(t *testing.T) {
	for _, v := range []string{"", "si", "2", "truthy", "yess"} {
		_, err := ParseFlexBool(v)
		require.Error(t, err, "literal %q", v)
		assert.True(t, apperr.IsValidation(err), "literal %q", v)
	}
}
