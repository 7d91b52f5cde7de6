package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileDriver stores each key as a JSON document under a root directory,
// e.g. key "orders.table" becomes <root>/orders.table.json.
type FileDriver struct {
	root string // absolute root directory
}

// NewFileDriver creates a driver rooted at root. A relative root is
// resolved against the working directory.
func NewFileDriver(root string) *FileDriver {
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &FileDriver{root: root}
}

func (d *FileDriver) path(key string) string {
	return filepath.Join(d.root, key+".json")
}

func (d *FileDriver) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kvstore/file: get %s: %w", key, err)
	}
	return data, nil
}

func (d *FileDriver) Put(key string, value []byte) error {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("kvstore/file: mkdir: %w", err)
	}
	if err := os.WriteFile(d.path(key), value, 0o644); err != nil {
		return fmt.Errorf("kvstore/file: put %s: %w", key, err)
	}
	return nil
}

func (d *FileDriver) Delete(key string) error {
	err := os.Remove(d.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kvstore/file: delete %s: %w", key, err)
	}
	return nil
}
