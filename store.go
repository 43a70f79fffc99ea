package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// JSONFile is a Store that keeps the products in a single JSON file.
//
// Saves are atomic: the content is written to a temporary file in the same
// folder, synced, and then renamed over Path.
type JSONFile struct {
	Path string
}

// NewJSONFile returns a store persisted in the file at path.
func NewJSONFile(path string) *JSONFile { return &JSONFile{Path: path} }

// Load reads the products from the file. A missing file is an empty
// inventory.
func (s *JSONFile) Load() ([]Product, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		zap.S().Infof("missing-inventory-file name=%q", s.Path)
		return make([]Product, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", s.Path, err)
	}
	defer f.Close()

	products, err := DecodeProducts(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", s.Path, err)
	}
	zap.S().Debugf("load-inventory-file name=%q products=%d", s.Path, len(products))
	return products, nil
}

// Save replaces the file content with products.
func (s *JSONFile) Save(products []Product) (err error) {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %w", dir, err)
	}
	// Remove the temporary file unless it was renamed.
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := EncodeProducts(tmp, products); err != nil {
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("cannot sync %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close %q: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("cannot set mode of %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("cannot replace %q: %w", s.Path, err)
	}
	zap.S().Debugf("save-inventory-file name=%q products=%d", s.Path, len(products))
	return nil
}
