// Package checkpoint persists per-iteration graph snapshots so an
// interrupted episode can be inspected or resumed.
package checkpoint

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/yuceelege/GNN-TAMP/core"
)

// ErrNotFound is returned when an episode has no stored snapshots.
var ErrNotFound = errors.New("checkpoint not found")

// Store writes snapshots to a Badger key-value database. Keys are
// "ep/<episode>/<iteration>" with a fixed-width big-endian iteration so
// lexicographic order equals placement order.
type Store struct {
	db *badger.DB
}

// Open creates or opens a store at dir. An empty dir opens an in-memory
// database, which is what the tests use.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open checkpoint db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores one snapshot. It satisfies the planner's Checkpointer
// interface.
func (s *Store) Save(ctx context.Context, episodeID string, iteration int, snap core.GraphSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(episodeID, iteration), payload)
	})
}

// Latest returns the most recent snapshot for an episode along with its
// iteration number, or ErrNotFound.
func (s *Store) Latest(ctx context.Context, episodeID string) (core.GraphSnapshot, int, error) {
	if err := ctx.Err(); err != nil {
		return core.GraphSnapshot{}, 0, err
	}

	var snap core.GraphSnapshot
	iteration := -1

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte("ep/" + episodeID + "/")
		// Reverse iteration starts past the last key of the prefix.
		seek := append(append([]byte{}, prefix...), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			iteration = iterationFromKey(item.Key(), len(prefix))
			return item.Value(func(val []byte) error {
				return json.Unmarshal(val, &snap)
			})
		}
		return ErrNotFound
	})
	if err != nil {
		return core.GraphSnapshot{}, 0, err
	}
	return snap, iteration, nil
}

// Iterations lists the stored iteration numbers for an episode in
// ascending order.
func (s *Store) Iterations(ctx context.Context, episodeID string) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []int
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte("ep/" + episodeID + "/")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			out = append(out, iterationFromKey(it.Item().Key(), len(prefix)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func key(episodeID string, iteration int) []byte {
	k := make([]byte, 0, len(episodeID)+12)
	k = append(k, "ep/"...)
	k = append(k, episodeID...)
	k = append(k, '/')
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(iteration))
	return append(k, buf[:]...)
}

func iterationFromKey(k []byte, prefixLen int) int {
	if len(k) < prefixLen+8 {
		return -1
	}
	return int(binary.BigEndian.Uint64(k[prefixLen : prefixLen+8]))
}
