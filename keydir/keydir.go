package keydir

// Keydir maps a key to the offset of its latest record in the log.
// you can use some other data structure once you implement this interface.
// implementations are not safe for concurrent use.
type Keydir interface {
	// Put store the offset of key and return the offset it replaced, if any
	Put(key []byte, offset uint64) (uint64, bool)
	Get(key []byte) (uint64, bool)
	Size() int
	// Iterator return a snapshot of the keydir in ascending key order
	Iterator() Iterator
	Close() error
}

type Iterator interface {
	Rewind()
	Next()
	Valid() bool
	Key() []byte
	Value() uint64
	Close()
}

type Type int8

const (
	TypeHashMap Type = iota
	TypeBTree
)

func (t Type) String() string {
	switch t {
	case TypeHashMap:
		return "hashmap"
	case TypeBTree:
		return "btree"
	default:
		return "unknown"
	}
}

// NewKeydir create an empty keydir, unknown types fall back to TypeHashMap
func NewKeydir(typ Type) Keydir {
	switch typ {
	case TypeBTree:
		return NewBTree(defaultDegree)
	default:
		return NewHashMap()
	}
}

// sliceIterator iterates over a snapshot taken when the iterator is created
type sliceIterator struct {
	keys    [][]byte
	offsets []uint64
	curIdx  int
}

func (si *sliceIterator) Rewind() {
	si.curIdx = 0
}

func (si *sliceIterator) Next() {
	si.curIdx++
}

func (si *sliceIterator) Valid() bool {
	return si.curIdx < len(si.keys)
}

func (si *sliceIterator) Key() []byte {
	return si.keys[si.curIdx]
}

func (si *sliceIterator) Value() uint64 {
	return si.offsets[si.curIdx]
}

func (si *sliceIterator) Close() {
	si.keys, si.offsets = nil, nil
}
