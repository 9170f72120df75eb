package model

// HeaderSize is the fixed size of a record header: crc(4) + keySize(4) + valueSize(4)
const HeaderSize = 12

// Record is one key value pair as stored in the log
type Record struct {
	Key   []byte
	Value []byte
}

type RecordHeader struct {
	Crc       uint32
	KeySize   uint32
	ValueSize uint32
}

// PayloadSize returns keySize + valueSize without overflowing
func (h *RecordHeader) PayloadSize() uint64 {
	return uint64(h.KeySize) + uint64(h.ValueSize)
}

// Size returns the size of the whole encoded record
func (h *RecordHeader) Size() int64 {
	return HeaderSize + int64(h.PayloadSize())
}
