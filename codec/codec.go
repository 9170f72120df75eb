package codec

import "github.com/cqkv/rkv/model"

type Codec interface {
	// MarshalRecord return record data and the data size
	MarshalRecord(*model.Record) ([]byte, int64, error)

	UnmarshalRecordHeader([]byte, *model.RecordHeader) error

	// UnmarshalRecord verify the payload against the header and split it into key and value
	UnmarshalRecord([]byte, *model.RecordHeader, *model.Record) error

	// MarshalIndex encode a key -> offset mapping, the output is deterministic
	MarshalIndex(map[string]uint64) []byte

	UnmarshalIndex([]byte) (map[string]uint64, error)
}
