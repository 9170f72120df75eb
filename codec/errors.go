package codec

import "fmt"

var (
	ErrCorrupted      = addPrefix("record checksum mismatch, data may be corrupted")
	ErrTruncated      = addPrefix("record is truncated")
	ErrRecordTooLarge = addPrefix("key and value are too large for one record")
	ErrInvalidIndex   = addPrefix("index snapshot is malformed")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("rkv err: %s", errStr)
}
