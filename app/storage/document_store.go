package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PutMode controls how Put treats an existing record.
type PutMode int

const (
	// CreateOnly fails with fs.ErrExist when the id is already present.
	CreateOnly PutMode = iota
	// Upsert overwrites an existing record or creates a new one.
	Upsert
)

// ErrInvalidID is returned for identifiers that cannot name a file.
var ErrInvalidID = errors.New("invalid document id")

// RawDocument is a single record read from a document store, not yet decoded.
type RawDocument struct {
	ID   string
	Data []byte
}

// DocumentStore keeps one file per record in a single directory, named
// "{id}{ext}". The directory is created lazily on first write.
type DocumentStore struct {
	dir string
	ext string
}

// NewDocumentStore creates a store over dir for files with the given
// extension (including the dot, e.g. ".md").
func NewDocumentStore(dir, ext string) *DocumentStore {
	return &DocumentStore{dir: dir, ext: ext}
}

// List reads every record file in the directory. Files that cannot be read
// are skipped and counted rather than failing the whole listing. A missing
// directory yields an empty listing.
func (s *DocumentStore) List() (docs []RawDocument, skipped int, err error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to read %s: %w", s.dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, s.ext) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			skipped++
			continue
		}
		docs = append(docs, RawDocument{
			ID:   strings.TrimSuffix(name, s.ext),
			Data: data,
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, skipped, nil
}

// Get reads a single record. A missing record reports fs.ErrNotExist.
func (s *DocumentStore) Get(id string) ([]byte, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return os.ReadFile(s.path(id))
}

// Put writes a record. CreateOnly uses an exclusive create so two
// concurrent creates of the same id cannot both succeed; Upsert writes to
// a temporary file and renames it over the target so readers never observe
// a partially written record.
func (s *DocumentStore) Put(id string, data []byte, mode PutMode) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.dir, err)
	}
	if mode == CreateOnly {
		f, err := os.OpenFile(s.path(id), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return writeAtomic(s.dir, s.path(id), data)
}

// Delete removes a record. A missing record reports fs.ErrNotExist.
func (s *DocumentStore) Delete(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return os.Remove(s.path(id))
}

func (s *DocumentStore) path(id string) string {
	return filepath.Join(s.dir, id+s.ext)
}

func checkID(id string) error {
	if id == "" || id != filepath.Base(id) || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// writeAtomic writes data to a temporary file in dir and renames it to
// path. The rename is atomic on POSIX filesystems.
func writeAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
