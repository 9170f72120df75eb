package rkv

import (
	"fmt"

	"github.com/cqkv/rkv/codec"
)

var (
	ErrNoRecord   = addPrefix("no record at offset")
	ErrClosed     = addPrefix("store is closed")
	ErrFileLocked = addPrefix("log file is locked by another store")

	// record level errors come from the codec
	ErrCorrupted      = codec.ErrCorrupted
	ErrTruncated      = codec.ErrTruncated
	ErrRecordTooLarge = codec.ErrRecordTooLarge
	ErrInvalidIndex   = codec.ErrInvalidIndex
)

func addPrefix(errStr string) error {
	return fmt.Errorf("rkv err: %s", errStr)
}
