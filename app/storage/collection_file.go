package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// CollectionFile stores a whole collection as one JSON array on disk.
// Every mutation is a full read-decode-modify-encode-write cycle, so all
// access is serialized behind the mutex: concurrent writers to the same
// collection cannot lose updates. Construct exactly one CollectionFile per
// path per process.
type CollectionFile struct {
	path string
	mu   sync.Mutex
}

// NewCollectionFile creates a collection backed by the JSON array at path.
// The file is created lazily on first write.
func NewCollectionFile(path string) *CollectionFile {
	return &CollectionFile{path: path}
}

// View calls fn with the decoded records. The records are a working copy;
// changes to them are not persisted.
func (c *CollectionFile) View(fn func(records []json.RawMessage) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.load()
	if err != nil {
		return err
	}
	return fn(records)
}

// Update calls fn with the decoded records and persists the returned slice.
// If fn returns an error nothing is written. Updates to one collection are
// linearized by the mutex.
func (c *CollectionFile) Update(fn func(records []json.RawMessage) ([]json.RawMessage, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := c.load()
	if err != nil {
		return err
	}
	out, err := fn(records)
	if err != nil {
		return err
	}
	return c.save(out)
}

// load decodes the collection file. A missing or empty file is the
// bootstrap case and yields an empty collection.
func (c *CollectionFile) load() ([]json.RawMessage, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s is not a JSON array: %v", ErrMalformedRecord, c.path, err)
	}
	return records, nil
}

func (c *CollectionFile) save(records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}
	data = append(data, '\n')
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return writeAtomic(dir, c.path, data)
}
