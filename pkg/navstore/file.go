package navstore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jfdoradotr/navstack/pkg/errors"
)

// FileStorage persists the navigation path as a single JSON file.
// The file is overwritten wholesale on each save; there is no versioning,
// no checksum, and no migration between schema changes.
type FileStorage struct {
	path string
}

// NewFileStorage creates file-based storage at the given path.
// If path is empty, it defaults to path.json under the XDG data directory
// (~/.local/share/navstack/). Parent directories are created as needed.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve data dir")
		}
		path = filepath.Join(dir, "path.json")
	}
	if err := errors.ValidateStoragePath(path); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create storage dir")
	}
	return &FileStorage{path: path}, nil
}

// defaultDataDir returns the storage directory using the XDG standard.
func defaultDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "navstack"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "navstack"), nil
}

// Load reads the persisted path file. A missing file is not an error.
func (f *FileStorage) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeLoad, err, "read path file %s", f.path)
	}
	return data, true, nil
}

// Save overwrites the persisted path file.
func (f *FileStorage) Save(ctx context.Context, data []byte) error {
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeSave, err, "write path file %s", f.path)
	}
	return nil
}

// Clear removes the persisted path file.
func (f *FileStorage) Clear(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSave, err, "remove path file %s", f.path)
	}
	return nil
}

// Close does nothing for file storage.
func (f *FileStorage) Close() error {
	return nil
}

// Path returns the file location backing this storage.
func (f *FileStorage) Path() string {
	return f.path
}

// Ensure FileStorage implements Storage.
var _ Storage = (*FileStorage)(nil)
