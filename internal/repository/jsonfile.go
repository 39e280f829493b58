package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

const indent = "    "

// JSONFile persists a whole collection as one pretty-printed JSON array.
type JSONFile[T any] struct {
	path string
}

func NewJSONFile[T any](path string) *JSONFile[T] {
	return &JSONFile[T]{path: path}
}

func (f *JSONFile[T]) Path() string {
	return f.path
}

func (f *JSONFile[T]) Load() ([]T, error) {
	return Load[T](f.path)
}

func (f *JSONFile[T]) InitializeIfAbsent(seed []T) (bool, error) {
	return InitializeIfAbsent(f.path, seed)
}

func (f *JSONFile[T]) Save(items []T) error {
	return Save(f.path, items)
}

// Load reads the collection stored at path. A missing file is reported as an
// I/O error; callers seed it with InitializeIfAbsent first.
func Load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrIO, path, err)
	}

	items := make([]T, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrParse, path, err)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

// InitializeIfAbsent writes seed to path unless the file already exists.
// It reports whether the file was written.
func InitializeIfAbsent[T any](path string, seed []T) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: stat %s: %v", domain.ErrIO, path, err)
	}
	if err := Save(path, seed); err != nil {
		return false, err
	}
	return true, nil
}

// Save replaces the file at path with the whole collection. The data goes to a
// temp file in the same directory first and is renamed over path once synced.
func Save[T any](path string, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", domain.ErrIO, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", domain.ErrIO, path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := writeAndClose(tmp, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrIO, tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: chmod %s: %v", domain.ErrIO, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", domain.ErrIO, path, err)
	}
	committed = true
	return nil
}

func writeAndClose(f *os.File, data []byte) (err error) {
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
