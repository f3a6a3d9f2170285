// internal/utils/converter.go
package utils

import (
	"strings"

	"github.com/tiendita/backend/internal/apperr"
)

// ParseFlexBool maps the accepted boolean literals to a bool. Anything
// outside the table is a validation error, never a silent false.
func ParseFlexBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "yes", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, apperr.Validation("invalid boolean value %q", value)
}
