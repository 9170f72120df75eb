// Package snapshot keeps a copy of a store's index inside the log itself,
// as the value of a reserved key.
//
// Lookups through a snapshot ignore the index rebuilt by Load and use the last
// saved copy instead, so writes made after the last Save are not visible.
package snapshot

import (
	"bytes"
	"fmt"

	"github.com/cqkv/rkv/codec"
	"github.com/cqkv/rkv/model"
)

// DefaultKey is the reserved key the snapshot is stored under
var DefaultKey = []byte("+index")

// Store is the part of rkv.Store a snapshot needs
type Store interface {
	Index() map[string]uint64
	Insert(key, value []byte) error
	Get(key []byte) ([]byte, bool, error)
	ReadAt(offset uint64) (*model.Record, error)
}

type Snapshot struct {
	store Store
	key   []byte
	codec codec.Codec
}

// New return a snapshot stored under key, DefaultKey is used when key is nil
func New(store Store, key []byte) *Snapshot {
	if key == nil {
		key = DefaultKey
	}
	return &Snapshot{
		store: store,
		key:   key,
		codec: codec.NewCodecImpl(),
	}
}

// Save serializes the whole index, without the reserved key, and inserts it
// under the reserved key
func (sn *Snapshot) Save() error {
	index := sn.store.Index()
	delete(index, string(sn.key))

	if err := sn.store.Insert(sn.key, sn.codec.MarshalIndex(index)); err != nil {
		return fmt.Errorf("save index snapshot: %w", err)
	}
	return nil
}

// Load return the last saved index, an empty one if nothing was saved yet
func (sn *Snapshot) Load() (map[string]uint64, error) {
	data, found, err := sn.store.Get(sn.key)
	if err != nil {
		return nil, fmt.Errorf("load index snapshot: %w", err)
	}
	// a deleted snapshot reads back as an empty value
	if !found || len(data) == 0 {
		return map[string]uint64{}, nil
	}

	index, err := sn.codec.UnmarshalIndex(data)
	if err != nil {
		return nil, fmt.Errorf("load index snapshot: %w", err)
	}
	return index, nil
}

// Get looks key up in the last saved index and reads its record.
// found is false when the key is not in the snapshot.
func (sn *Snapshot) Get(key []byte) (value []byte, found bool, err error) {
	index, err := sn.Load()
	if err != nil {
		return nil, false, err
	}

	offset, ok := index[string(key)]
	if !ok {
		return nil, false, nil
	}

	record, err := sn.store.ReadAt(offset)
	if err != nil {
		return nil, false, err
	}
	if !bytes.Equal(record.Key, key) {
		return nil, false, fmt.Errorf("%w: snapshot points at key %q for %q (offset %d)", codec.ErrCorrupted, record.Key, key, offset)
	}
	return record.Value, true, nil
}
