// internal/services/services.go
package services

import (
	"strings"

	"github.com/tiendita/backend/internal/apperr"
	"github.com/tiendita/backend/internal/store"
	"github.com/tiendita/backend/internal/utils"
)

// Collection is the slice of the store API the entity services consume.
// *store.Collection[T] satisfies it.
type Collection[T store.Identifiable] interface {
	LoadAll() ([]T, error)
	Update(mutate func(records []T) ([]T, error)) error
}

func indexByID[T store.Identifiable](records []T, id int, entity string) (int, error) {
	for i, r := range records {
		if r.Identity() == id {
			return i, nil
		}
	}
	return -1, apperr.NotFound("%s %d not found", entity, id)
}

func findByID[T store.Identifiable](records []T, id int, entity string) (T, error) {
	i, err := indexByID(records, id, entity)
	if err != nil {
		var zero T
		return zero, err
	}
	return records[i], nil
}

// requireFields folds validator failures into a single validation error
// naming the missing required fields.
func requireFields(req interface{}) error {
	err := utils.ValidateStruct(req)
	if err == nil {
		return nil
	}
	if fields := utils.MissingFields(err); len(fields) > 0 {
		return apperr.Validation("missing required fields: %s", strings.Join(fields, ", "))
	}
	return apperr.Validation("invalid request: %v", err)
}

// refExists reports whether lookup resolves id. A not-found result is
// false; any other failure propagates, so "not found" is never conflated
// with "store unavailable".
func refExists(lookup func(id int) error, id int) (bool, error) {
	err := lookup(id)
	if err == nil {
		return true, nil
	}
	if apperr.IsNotFound(err) {
		return false, nil
	}
	return false, err
}
