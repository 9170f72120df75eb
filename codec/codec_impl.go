package codec

import (
	"encoding/binary"
	"math"
	"sort"

	"github.com/cqkv/rkv/model"
	"github.com/cqkv/rkv/utils"
)

var _ Codec = (*CodecImpl)(nil)

type CodecImpl struct{}

func NewCodecImpl() *CodecImpl {
	return &CodecImpl{}
}

/*
default codec, all integers are little endian:
	- header: crc(4) + keySize(4) + valueSize(4)
	- payload: key + value, crc is computed over the payload
	crc | keySize | valueSize | key | value
*/

// MarshalRecord return record data and the data size
func (cl *CodecImpl) MarshalRecord(record *model.Record) ([]byte, int64, error) {
	kz, vz := len(record.Key), len(record.Value)
	if err := checkRecordSize(uint64(kz), uint64(vz)); err != nil {
		return nil, 0, err
	}

	data := make([]byte, model.HeaderSize+kz+vz)
	binary.LittleEndian.PutUint32(data[4:8], uint32(kz))
	binary.LittleEndian.PutUint32(data[8:12], uint32(vz))
	copy(data[model.HeaderSize:], record.Key)
	copy(data[model.HeaderSize+kz:], record.Value)

	crc := utils.GenerateCrc(data[model.HeaderSize:])
	binary.LittleEndian.PutUint32(data[:4], crc)

	return data, int64(len(data)), nil
}

// key and value lengths share one u32 range
func checkRecordSize(keySize, valueSize uint64) error {
	if keySize > math.MaxUint32 || valueSize > math.MaxUint32 || keySize+valueSize > math.MaxUint32 {
		return ErrRecordTooLarge
	}
	return nil
}

func (cl *CodecImpl) UnmarshalRecordHeader(headerData []byte, header *model.RecordHeader) error {
	if len(headerData) < model.HeaderSize {
		return ErrTruncated
	}

	header.Crc = binary.LittleEndian.Uint32(headerData[:4])
	header.KeySize = binary.LittleEndian.Uint32(headerData[4:8])
	header.ValueSize = binary.LittleEndian.Uint32(headerData[8:12])

	if header.PayloadSize() > math.MaxUint32 {
		return ErrCorrupted
	}
	return nil
}

func (cl *CodecImpl) UnmarshalRecord(data []byte, header *model.RecordHeader, record *model.Record) error {
	if uint64(len(data)) != header.PayloadSize() {
		return ErrTruncated
	}

	if !utils.CheckCrc(header.Crc, data) {
		return ErrCorrupted
	}

	kz := header.KeySize
	record.Key = data[:kz:kz]
	record.Value = data[kz:]
	return nil
}

/*
index snapshot:
	count(uvarint) | keySize(uvarint) | key | offset(uvarint) | ...
	entries are sorted by key
*/

func (cl *CodecImpl) MarshalIndex(index map[string]uint64) []byte {
	keys := make([]string, 0, len(index))
	size := binary.MaxVarintLen64
	for key := range index {
		keys = append(keys, key)
		size += len(key) + binary.MaxVarintLen64*2
	}
	sort.Strings(keys)

	buf := make([]byte, size)
	idx := binary.PutUvarint(buf, uint64(len(keys)))
	for _, key := range keys {
		idx += binary.PutUvarint(buf[idx:], uint64(len(key)))
		idx += copy(buf[idx:], key)
		idx += binary.PutUvarint(buf[idx:], index[key])
	}
	return buf[:idx]
}

func (cl *CodecImpl) UnmarshalIndex(buf []byte) (map[string]uint64, error) {
	count, n := binary.Uvarint(buf)
	if n <= 0 {
		return nil, ErrInvalidIndex
	}
	idx := n

	// every entry takes at least two bytes
	if count > uint64(len(buf)-idx)/2 {
		return nil, ErrInvalidIndex
	}

	index := make(map[string]uint64, count)
	for i := uint64(0); i < count; i++ {
		kz, n := binary.Uvarint(buf[idx:])
		if n <= 0 || kz > uint64(len(buf)-idx-n) {
			return nil, ErrInvalidIndex
		}
		idx += n

		key := string(buf[idx : idx+int(kz)])
		idx += int(kz)

		offset, n := binary.Uvarint(buf[idx:])
		if n <= 0 {
			return nil, ErrInvalidIndex
		}
		idx += n

		index[key] = offset
	}

	if idx != len(buf) {
		return nil, ErrInvalidIndex
	}
	return index, nil
}
