package preferences

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore persists preferences as a YAML document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the file at path. The file does not
// need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the file. A missing file yields Default, and keys absent from the
// document keep their default values.
func (s *FileStore) Load(ctx context.Context) (Preferences, error) {
	if err := ctx.Err(); err != nil {
		return Preferences{}, err
	}

	prefs := Default()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return Preferences{}, errors.Join(ErrLoadPreferences, err)
	}

	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, errors.Join(ErrLoadPreferences, ErrCorruptPreferences, fmt.Errorf("%s: %w", s.path, err))
	}
	return prefs, nil
}

// Save validates p and replaces the file atomically.
func (s *FileStore) Save(ctx context.Context, p Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.Join(ErrSavePreferences, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Join(ErrSavePreferences, err)
	}

	tmp, err := os.CreateTemp(dir, ".puretext-*.yaml")
	if err != nil {
		return errors.Join(ErrSavePreferences, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Join(ErrSavePreferences, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(ErrSavePreferences, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Join(ErrSavePreferences, err)
	}
	return nil
}
