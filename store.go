// Package rkv is a small persistent key value store backed by one append-only
// log file.
//
// Every write appends a checksummed record to the end of the log and points an
// in-memory index at it. The index is not persisted, Load rebuilds it by
// replaying the whole log. Deleting a key writes a record with an empty value,
// so a deleted key is still found and reads back as an empty value.
//
// Example usage:
//
//	s, err := rkv.Open("/path/to/data.log")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//
//	if err = s.Load(); err != nil {
//		log.Fatal(err)
//	}
//
//	if err = s.Insert([]byte("key"), []byte("value")); err != nil {
//		log.Fatal(err)
//	}
//
//	value, found, err := s.Get([]byte("key"))
//
// A Store is not safe for concurrent use, callers must serialize access.
package rkv

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cqkv/rkv/codec"
	"github.com/cqkv/rkv/fio"
	"github.com/cqkv/rkv/keydir"
	"github.com/cqkv/rkv/model"
	"github.com/gofrs/flock"
)

type Store struct {
	path     string
	dataFile *model.DataFile
	keydir   keydir.Keydir
	fileLock *flock.Flock
	closed   bool

	options options
}

// Open opens the log file at path for reading and writing, creating it if it
// does not exist. Nothing is read, the index starts empty until Load is called.
func Open(path string, opts ...Option) (*Store, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	s := &Store{
		path:    path,
		keydir:  keydir.NewKeydir(options.keydirType),
		options: options,
	}

	if options.fileLock {
		s.fileLock = fio.NewFlock(path)
		locked, err := s.fileLock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", path, err)
		}
		if !locked {
			return nil, ErrFileLocked
		}
	}

	ioManager, err := options.ioManagerCreator(path)
	if err != nil {
		_ = s.unlock()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	s.dataFile = model.OpenDataFile(path, ioManager)

	return s, nil
}

// Path returns the path of the log file
func (s *Store) Path() string {
	return s.path
}

// Load replays the whole log from offset 0 and rebuilds the index.
// The last record of a key wins. On error the previous index is kept.
func (s *Store) Load() error {
	if s.closed {
		return ErrClosed
	}

	kd := keydir.NewKeydir(s.options.keydirType)
	reader := bufio.NewReader(s.dataFile.Reader(0))

	var offset int64
	for {
		record, size, err := codec.ReadRecord(s.options.codec, reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			_ = kd.Close()
			return fmt.Errorf("load record at offset %d: %w", offset, err)
		}

		kd.Put(record.Key, uint64(offset))
		offset += size
	}

	_ = s.keydir.Close()
	s.keydir = kd
	return nil
}

// AppendRaw appends a record to the end of the log without touching the index
// and returns the offset the record starts at.
func (s *Store) AppendRaw(key, value []byte) (uint64, error) {
	if s.closed {
		return 0, ErrClosed
	}

	data, _, err := s.options.codec.MarshalRecord(&model.Record{Key: key, Value: value})
	if err != nil {
		return 0, err
	}

	offset, err := s.dataFile.Append(data)
	if err != nil {
		return 0, fmt.Errorf("append record: %w", err)
	}

	if s.options.syncWrites {
		if err = s.dataFile.Sync(); err != nil {
			return 0, err
		}
	}

	return uint64(offset), nil
}

// Insert appends a record for key and points the index at it
func (s *Store) Insert(key, value []byte) error {
	offset, err := s.AppendRaw(key, value)
	if err != nil {
		return err
	}

	s.keydir.Put(key, offset)
	return nil
}

// Update is the same as Insert, records are never changed in place
func (s *Store) Update(key, value []byte) error {
	return s.Insert(key, value)
}

// Delete writes an empty value for key. The key stays in the index.
func (s *Store) Delete(key []byte) error {
	return s.Insert(key, []byte{})
}

// Get returns the latest value of key. found is false if the key was never written.
func (s *Store) Get(key []byte) (value []byte, found bool, err error) {
	if s.closed {
		return nil, false, ErrClosed
	}

	offset, ok := s.keydir.Get(key)
	if !ok {
		return nil, false, nil
	}

	record, err := s.ReadAt(offset)
	if err != nil {
		return nil, false, err
	}

	if !bytes.Equal(record.Key, key) {
		return nil, false, fmt.Errorf("%w: index points at key %q for %q (offset %d)", ErrCorrupted, record.Key, key, offset)
	}
	return record.Value, true, nil
}

// ReadAt decodes the single record starting at offset
func (s *Store) ReadAt(offset uint64) (*model.Record, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if offset > math.MaxInt64 {
		return nil, fmt.Errorf("%w %d", ErrNoRecord, offset)
	}

	record, _, err := codec.ReadRecord(s.options.codec, s.dataFile.Reader(int64(offset)))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w %d", ErrNoRecord, offset)
		}
		return nil, fmt.Errorf("read record at offset %d: %w", offset, err)
	}
	return record, nil
}

// Len returns the number of keys in the index
func (s *Store) Len() int {
	return s.keydir.Size()
}

// Keys returns the indexed keys in ascending order
func (s *Store) Keys() [][]byte {
	iterator := s.keydir.Iterator()
	defer iterator.Close()

	keys := make([][]byte, 0, s.keydir.Size())
	for iterator.Rewind(); iterator.Valid(); iterator.Next() {
		keys = append(keys, bytes.Clone(iterator.Key()))
	}
	return keys
}

// Index returns a copy of the index, key -> offset of its latest record
func (s *Store) Index() map[string]uint64 {
	iterator := s.keydir.Iterator()
	defer iterator.Close()

	index := make(map[string]uint64, s.keydir.Size())
	for iterator.Rewind(); iterator.Valid(); iterator.Next() {
		index[string(iterator.Key())] = iterator.Value()
	}
	return index
}

// ReplaceIndex swaps the whole index for the given mapping.
// The offsets are trusted, they are not checked against the log.
func (s *Store) ReplaceIndex(index map[string]uint64) {
	kd := keydir.NewKeydir(s.options.keydirType)
	for key, offset := range index {
		kd.Put([]byte(key), offset)
	}

	_ = s.keydir.Close()
	s.keydir = kd
}

// Sync flushes the log to stable storage
func (s *Store) Sync() error {
	if s.closed {
		return ErrClosed
	}
	return s.dataFile.Sync()
}

// Close releases the file handle and the file lock. Calling it twice is a no-op.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.dataFile.Close()
	_ = s.keydir.Close()
	if unlockErr := s.unlock(); err == nil {
		err = unlockErr
	}
	return err
}

func (s *Store) unlock() error {
	if s.fileLock == nil {
		return nil
	}
	return s.fileLock.Unlock()
}
