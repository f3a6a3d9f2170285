// internal/store/store.go
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tiendita/backend/internal/apperr"
)

// Identifiable is implemented by every record kept in a collection.
type Identifiable interface {
	Identity() int
}

// Collection persists one entity collection as a single JSON file that is
// replaced in full on every mutation; nothing is appended in place.
// Mutations go through Update, which holds the collection lock across the
// whole load-mutate-write cycle so interleaved writers cannot lose updates.
type Collection[T Identifiable] struct {
	name string
	path string
	mu   sync.Mutex
	log  *logrus.Entry
}

func NewCollection[T Identifiable](dir, name string) *Collection[T] {
	return &Collection[T]{
		name: name,
		path: filepath.Join(dir, name+".json"),
		log:  logrus.WithField("collection", name),
	}
}

func (c *Collection[T]) Name() string { return c.name }

// EnsureExists provisions an empty collection file when none is present.
// LoadAll treats a missing file as a storage failure, so deployments call
// this once at startup.
func (c *Collection[T]) EnsureExists() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return apperr.Storage(fmt.Sprintf("stat %s collection", c.name), err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return apperr.Storage(fmt.Sprintf("create data directory for %s", c.name), err)
	}
	c.log.Info("provisioning empty collection file")
	return c.write([]T{})
}

// LoadAll reads the full collection.
func (c *Collection[T]) LoadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// ReplaceAll overwrites the collection with records.
func (c *Collection[T]) ReplaceAll(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(records)
}

// Update runs one serialized load-mutate-write cycle. The mutate callback
// receives the current records and returns the full replacement set; a
// callback error aborts the cycle without touching the file.
func (c *Collection[T]) Update(mutate func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	updated, err := mutate(records)
	if err != nil {
		return err
	}
	return c.write(updated)
}

func (c *Collection[T]) load() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, apperr.Storage(fmt.Sprintf("read %s collection", c.name), err)
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperr.Storage(fmt.Sprintf("decode %s collection", c.name), err)
	}
	return records, nil
}

func (c *Collection[T]) write(records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return apperr.Storage(fmt.Sprintf("encode %s collection", c.name), err)
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		return apperr.Storage(fmt.Sprintf("write %s collection", c.name), err)
	}
	return nil
}
