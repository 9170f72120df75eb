package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/cqkv/rkv/model"
)

// records up to this size are read into a buffer allocated up front,
// bigger ones grow while reading so a bogus header can not force a huge allocation
const maxPreallocSize = 1 << 20

var defaultCodec = NewCodecImpl()

// Encode return the on-disk form of one record
func Encode(key, value []byte) ([]byte, error) {
	data, _, err := defaultCodec.MarshalRecord(&model.Record{Key: key, Value: value})
	return data, err
}

// Decode read exactly one record from r with the default codec
func Decode(r io.Reader) (*model.Record, error) {
	record, _, err := ReadRecord(defaultCodec, r)
	return record, err
}

// ReadRecord read exactly one record from r and return it with its encoded size.
// io.EOF is returned only when r ends on a record boundary,
// a stream ending anywhere else yields ErrTruncated.
func ReadRecord(c Codec, r io.Reader) (*model.Record, int64, error) {
	headerData := make([]byte, model.HeaderSize)
	if _, err := io.ReadFull(r, headerData); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return nil, 0, io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, 0, fmt.Errorf("%w: short header", ErrTruncated)
		}
		return nil, 0, err
	}

	header := new(model.RecordHeader)
	if err := c.UnmarshalRecordHeader(headerData, header); err != nil {
		return nil, 0, err
	}

	payloadSize := int64(header.PayloadSize())
	payload := bytes.NewBuffer(make([]byte, 0, min(payloadSize, maxPreallocSize)))
	if _, err := io.CopyN(payload, r, payloadSize); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("%w: want %d payload bytes, got %d", ErrTruncated, payloadSize, payload.Len())
		}
		return nil, 0, err
	}

	record := new(model.Record)
	if err := c.UnmarshalRecord(payload.Bytes(), header, record); err != nil {
		return nil, 0, err
	}
	return record, header.Size(), nil
}
