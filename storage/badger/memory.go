package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/memrank/core"
	"github.com/poiesic/memrank/storage"
)

// MemoryStore implements storage.MemoryRepository for BadgerDB.
type MemoryStore struct {
	backend *Backend
}

var _ storage.MemoryRepository = (*MemoryStore)(nil)

// NewRepository opens a BadgerDB database at path and returns a memory
// repository backed by it. The caller owns the repository and must Close it.
func NewRepository(path string) (storage.MemoryRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{backend: backend}, nil
}

// Close closes the underlying database.
func (s *MemoryStore) Close() error {
	return s.backend.Close()
}

// WithTransaction delegates to the backend.
func (s *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.backend.WithTransaction(ctx, fn)
}

// AddMemories adds one or more memory records to storage.
// Records with a zero ID get a content-derived ID, so adding the same
// memory twice overwrites rather than duplicates.
func (s *MemoryStore) AddMemories(ctx context.Context, records ...*core.MemoryRecord) ([]*core.MemoryRecord, error) {
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if record.Id == 0 {
				record.Id = core.IDFromContent(record.IdentityText())
			}
			if record.CreatedAt.IsZero() {
				record.CreatedAt = time.Now().UTC()
			}

			key := makeMemoryRecordKey(record.Id)

			// An existing record under the same ID means re-insertion of
			// the same content; its index entries must be replaced.
			old, err := s.readMemoryRecord(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				record.CreatedAt = old.CreatedAt
				record.AccessCount = old.AccessCount
				record.LastAccessedAt = old.LastAccessedAt
				if err := s.deleteIndexEntries(tx, old); err != nil {
					return err
				}
			}

			value := storage.MarshalMemoryRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			dateKey := makeMemoryDateKey(record.CreatedAt, record.Id)
			if err := tx.Set(dateKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}

			for _, tag := range record.Tags {
				tagKey := makeMemoryTagKey(tag, record.Id)
				if err := tx.Set(tagKey, storage.MarshalID(record.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// GetMemory retrieves a single memory record by ID.
func (s *MemoryStore) GetMemory(ctx context.Context, id core.ID) (*core.MemoryRecord, error) {
	var result *core.MemoryRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeMemoryRecordKey(id)
		var err error
		result, err = s.readMemoryRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetMemories retrieves multiple memory records by their IDs.
// Missing IDs are skipped.
func (s *MemoryStore) GetMemories(ctx context.Context, ids ...core.ID) ([]*core.MemoryRecord, error) {
	var result []*core.MemoryRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeMemoryRecordKey(id)
			record, err := s.readMemoryRecord(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetAllMemories returns the full corpus in creation order by walking the
// date index. The order is stable for an unchanged corpus.
func (s *MemoryStore) GetAllMemories(ctx context.Context) ([]*core.MemoryRecord, error) {
	var results []*core.MemoryRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(memoryRecordDatePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			recordKey := makeMemoryRecordKey(recordID)
			record, err := s.readMemoryRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetMemoriesByTag retrieves records carrying the given tag, in ID order.
// Matching is case-insensitive.
func (s *MemoryStore) GetMemoriesByTag(ctx context.Context, tag string) ([]*core.MemoryRecord, error) {
	var results []*core.MemoryRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialMemoryTagKey(tag)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			recordKey := makeMemoryRecordKey(recordID)
			record, err := s.readMemoryRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// TouchAccess records a read of the given records: increments AccessCount
// and stamps LastAccessedAt. Missing IDs are skipped.
func (s *MemoryStore) TouchAccess(ctx context.Context, ids ...core.ID) error {
	now := time.Now().UTC()
	return s.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeMemoryRecordKey(id)
			record, err := s.readMemoryRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				continue
			}

			record.AccessCount++
			record.LastAccessedAt = now

			value := storage.MarshalMemoryRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// DeleteMemories removes memory records and their index entries by ID.
func (s *MemoryStore) DeleteMemories(ctx context.Context, ids ...core.ID) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeMemoryRecordKey(id)

			// Read record to get metadata for index cleanup
			record, err := s.readMemoryRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := s.deleteIndexEntries(tx, record); err != nil {
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Helper methods

// readMemoryRecord reads a memory record from the transaction.
func (s *MemoryStore) readMemoryRecord(tx *badger.Txn, key []byte) (*core.MemoryRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.MemoryRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalMemoryRecord(val)
		return unmarshalErr
	})
	return record, err
}

// deleteIndexEntries removes date and tag index entries for a record.
func (s *MemoryStore) deleteIndexEntries(tx *badger.Txn, record *core.MemoryRecord) error {
	dateKey := makeMemoryDateKey(record.CreatedAt, record.Id)
	if err := tx.Delete(dateKey); err != nil {
		return err
	}
	for _, tag := range record.Tags {
		tagKey := makeMemoryTagKey(tag, record.Id)
		if err := tx.Delete(tagKey); err != nil {
			return err
		}
	}
	return nil
}
