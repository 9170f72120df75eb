package rkv

import (
	"github.com/cqkv/rkv/codec"
	"github.com/cqkv/rkv/fio"
	"github.com/cqkv/rkv/keydir"
)

type options struct {
	syncWrites bool
	fileLock   bool
	keydirType keydir.Type

	ioManagerCreator func(path string) (fio.IOManager, error)
	codec            codec.Codec
}

type Option func(*options)

var defaultIOManagerCreator = func(path string) (fio.IOManager, error) {
	return fio.NewFileIO(path)
}

func defaultOptions() options {
	return options{
		keydirType:       keydir.TypeHashMap,
		ioManagerCreator: defaultIOManagerCreator,
		codec:            codec.NewCodecImpl(),
	}
}

func WithIOManagerCreator(fn func(path string) (fio.IOManager, error)) Option {
	return func(o *options) {
		o.ioManagerCreator = fn
	}
}

func WithCodec(codec codec.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithKeydir choose the in-memory index implementation
func WithKeydir(typ keydir.Type) Option {
	return func(o *options) {
		o.keydirType = typ
	}
}

// WithSyncWrites fsync the log after every append
func WithSyncWrites(sync bool) Option {
	return func(o *options) {
		o.syncWrites = sync
	}
}

// WithFileLock take an exclusive advisory lock on <path>.lock while the store is open.
// Without it nothing stops two stores from appending to the same file.
func WithFileLock(lock bool) Option {
	return func(o *options) {
		o.fileLock = lock
	}
}
