// internal/assets/assets.go
package assets

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/tiendita/backend/internal/config"
)

// Store holds uploaded binary assets, referenced from sku records by name
// only. Remove is the janitor side: it must report failures so callers can
// decide whether to surface them or log and keep the error already in
// flight.
type Store interface {
	Save(name string, src io.Reader) error
	Remove(name string) error
}

// NewStore picks the backend: S3 when AWS credentials are configured,
// local disk otherwise.
func NewStore(cfg *config.Config) (Store, error) {
	if cfg.AWS.AccessKeyID != "" {
		return NewS3Store(cfg)
	}
	return NewLocalStore(cfg.Storage.UploadDir)
}

// UniqueName builds a collision-free asset name for an upload, keeping the
// original extension.
func UniqueName(originalName string) string {
	id := uuid.New()
	ext := filepath.Ext(originalName)
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s_%s%s", timestamp, id.String()[:8], ext)
}
