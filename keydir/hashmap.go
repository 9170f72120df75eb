package keydir

import "sort"

var _ Keydir = (*Map)(nil)

// Map is the hash keydir, it is the default one
type Map struct {
	entries map[string]uint64
}

func NewHashMap() *Map {
	return &Map{entries: make(map[string]uint64)}
}

func (m *Map) Put(key []byte, offset uint64) (uint64, bool) {
	old, ok := m.entries[string(key)]
	m.entries[string(key)] = offset
	return old, ok
}

func (m *Map) Get(key []byte) (uint64, bool) {
	offset, ok := m.entries[string(key)]
	return offset, ok
}

func (m *Map) Size() int {
	return len(m.entries)
}

func (m *Map) Close() error {
	clear(m.entries)
	return nil
}

func (m *Map) Iterator() Iterator {
	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	iterator := &sliceIterator{
		keys:    make([][]byte, len(keys)),
		offsets: make([]uint64, len(keys)),
	}
	for i, key := range keys {
		iterator.keys[i] = []byte(key)
		iterator.offsets[i] = m.entries[key]
	}
	return iterator
}
