// internal/services/services_test.go
package services

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiendita/backend/internal/apperr"
	"github.com/tiendita/backend/internal/store"
)

// seedCollection builds a file-backed collection in a temp dir with the
// given records already persisted.
func seedCollection[T store.Identifiable](t *testing.T, name string, seed []T) *store.Collection[T] {
	t.Helper()
	c := store.NewCollection[T](t.TempDir(), name)
	require.NoError(t, c.ReplaceAll(seed))
	return c
}

// failingCollection wraps a real collection but fails every persist,
// after running the mutate callback like the real Update would.
type failingCollection[T store.Identifiable] struct {
	inner    *store.Collection[T]
	writeErr error
}

func (f *failingCollection[T]) LoadAll() ([]T, error) {
	return f.inner.LoadAll()
}

func (f *failingCollection[T]) Update(mutate func(records []T) ([]T, error)) error {
	records, err := f.inner.LoadAll()
	if err != nil {
		return err
	}
	if _, err := mutate(records); err != nil {
		return err
	}
	return f.writeErr
}

// fakeAssetStore records saves and removals; removeErr makes every
// removal fail.
type fakeAssetStore struct {
	saved     map[string]bool
	removed   []string
	removeErr error
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{saved: make(map[string]bool)}
}

func (f *fakeAssetStore) Save(name string, src io.Reader) error {
	f.saved[name] = true
	return nil
}

func (f *fakeAssetStore) Remove(name string) error {
	f.removed = append(f.removed, name)
	if f.removeErr != nil {
		return apperr.Asset("remove asset "+name, f.removeErr)
	}
	delete(f.saved, name)
	return nil
}
