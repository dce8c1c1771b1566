// Package audit keeps a durable trail of admin mutations in a local
// BadgerDB. Entries are append-only; nothing in the content subsystem
// reads them on the hot path.
package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	entryKeyPrefix = "audit:"
	entrySeqKey    = "seq:audit"
)

// Entry records one successful admin mutation.
type Entry struct {
	ID        int       `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`   // create, update, delete
	Resource  string    `json:"resource"` // post, job
	Key       string    `json:"key"`      // slug or job id
	CreatedAt time.Time `json:"createdAt"`
}

// Log is a badger-backed audit log.
type Log struct {
	db *badger.DB
}

// Open opens (or creates) the audit database at path.
func Open(path string) (*Log, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit db: %w", err)
	}
	return &Log{db: db}, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}

// Record appends an entry. The sequence number and timestamp are assigned
// here.
func (l *Log) Record(entry Entry) error {
	return l.db.Update(func(txn *badger.Txn) error {
		id, err := nextID(txn, entrySeqKey)
		if err != nil {
			return err
		}
		entry.ID = id
		entry.CreatedAt = time.Now().UTC()

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal audit entry: %w", err)
		}
		key := []byte(fmt.Sprintf("%s%012d", entryKeyPrefix, entry.ID))
		return txn.Set(key, data)
	})
}

// List returns up to limit entries, newest first.
func (l *Log) List(limit int) ([]Entry, error) {
	var entries []Entry
	err := l.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(entryKeyPrefix)
		// Reverse iteration starts just past the last audit key.
		seek := append(append([]byte{}, prefix...), 0xff)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var entry Entry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal audit entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// nextID gets the next available ID for a given sequence key.
func nextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}

	return id, nil
}
