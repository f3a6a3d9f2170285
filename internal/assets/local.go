// internal/assets/local.go
package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tiendita/backend/internal/apperr"
)

// LocalStore keeps assets as plain files in a single directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.Asset(fmt.Sprintf("create upload directory %s", dir), err)
	}
	return &LocalStore{dir: dir}, nil
}

// Path returns the on-disk location of an asset.
func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

func (s *LocalStore) Save(name string, src io.Reader) error {
	dst, err := os.Create(s.Path(name))
	if err != nil {
		return apperr.Asset(fmt.Sprintf("create asset %s", name), err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return apperr.Asset(fmt.Sprintf("write asset %s", name), err)
	}
	return nil
}

func (s *LocalStore) Remove(name string) error {
	if err := os.Remove(s.Path(name)); err != nil {
		return apperr.Asset(fmt.Sprintf("remove asset %s", name), err)
	}
	return nil
}
