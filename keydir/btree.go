package keydir

import (
	"bytes"

	"github.com/google/btree"
)

var _ Keydir = (*BTree)(nil)

const defaultDegree = 32

// BTree implement the keydir, keys are kept in order
type BTree struct {
	tree *btree.BTree
}

// Item implement the btree.Item interface
type Item struct {
	key    []byte
	offset uint64
}

func (i *Item) Less(than btree.Item) bool {
	return bytes.Compare(i.key, than.(*Item).key) == -1
}

func NewBTree(degree int) *BTree {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &BTree{
		tree: btree.New(degree),
	}
}

func (bt *BTree) Put(key []byte, offset uint64) (uint64, bool) {
	item := &Item{
		key:    bytes.Clone(key),
		offset: offset,
	}
	if item.key == nil {
		item.key = []byte{}
	}
	old := bt.tree.ReplaceOrInsert(item)
	if old == nil {
		return 0, false
	}
	return old.(*Item).offset, true
}

func (bt *BTree) Get(key []byte) (uint64, bool) {
	btItem := bt.tree.Get(&Item{key: key})
	if btItem == nil {
		return 0, false
	}
	return btItem.(*Item).offset, true
}

func (bt *BTree) Size() int {
	return bt.tree.Len()
}

func (bt *BTree) Close() error {
	bt.tree.Clear(false)
	return nil
}

func (bt *BTree) Iterator() Iterator {
	iterator := &sliceIterator{
		keys:    make([][]byte, 0, bt.tree.Len()),
		offsets: make([]uint64, 0, bt.tree.Len()),
	}

	bt.tree.Ascend(func(item btree.Item) bool {
		iterator.keys = append(iterator.keys, item.(*Item).key)
		iterator.offsets = append(iterator.offsets, item.(*Item).offset)
		return true
	})

	return iterator
}
