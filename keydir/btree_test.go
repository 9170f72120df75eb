package keydir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBTree_Put(t *testing.T) {
	bt := NewBTree(32)

	_, replaced := bt.Put(nil, 3)
	assert.False(t, replaced)

	_, replaced = bt.Put([]byte("a"), 3)
	assert.False(t, replaced)

	old, replaced := bt.Put([]byte("a"), 7)
	assert.True(t, replaced)
	assert.Equal(t, uint64(3), old)
	assert.Equal(t, 2, bt.Size())
}

func TestBTree_PutCopiesKey(t *testing.T) {
	bt := NewBTree(0)

	key := []byte("abc")
	bt.Put(key, 1)
	key[0] = 'z'

	offset, ok := bt.Get([]byte("abc"))
	assert.True(t, ok)
	assert.Equal(t, uint64(1), offset)

	_, ok = bt.Get([]byte("zbc"))
	assert.False(t, ok)
}

func TestBTree_Get(t *testing.T) {
	bt := NewBTree(32)

	bt.Put(nil, 3)
	offset, ok := bt.Get(nil)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), offset)

	// nil and empty keys are the same key
	offset, ok = bt.Get([]byte{})
	assert.True(t, ok)
	assert.Equal(t, uint64(3), offset)

	bt.Put([]byte("a"), 1)
	offset, _ = bt.Get([]byte("a"))
	assert.Equal(t, uint64(1), offset)

	bt.Put([]byte("a"), 2)
	offset, _ = bt.Get([]byte("a"))
	assert.Equal(t, uint64(2), offset)

	_, ok = bt.Get([]byte("b"))
	assert.False(t, ok)
}

func TestBTree_Replace(t *testing.T) {
	bt := NewBTree(32)

	bt.Put([]byte("a"), 1)
	bt.Put([]byte("a"), 2)

	// a key is indexed once, at its latest offset
	assert.Equal(t, 1, bt.Size())
	offset, ok := bt.Get([]byte("a"))
	assert.True(t, ok)
	assert.Equal(t, uint64(2), offset)
}

func TestBTree_Iterator(t *testing.T) {
	bt := NewBTree(32)
	for i := 4; i >= 0; i-- {
		bt.Put([]byte{byte(i)}, uint64(i*10))
	}

	iterator := bt.Iterator()
	defer iterator.Close()

	var i int
	for iterator.Rewind(); iterator.Valid(); iterator.Next() {
		assert.Equal(t, []byte{byte(i)}, iterator.Key())
		assert.Equal(t, uint64(i*10), iterator.Value())
		i++
	}
	assert.Equal(t, 5, i)

	iterator.Rewind()
	assert.True(t, iterator.Valid())
	assert.Equal(t, []byte{0}, iterator.Key())
}

func TestBTree_Close(t *testing.T) {
	bt := NewBTree(32)
	bt.Put([]byte("a"), 1)

	assert.Nil(t, bt.Close())
	assert.Equal(t, 0, bt.Size())
}
