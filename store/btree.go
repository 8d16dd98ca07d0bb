package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// DefaultFreeListSize is the number of nodes kept for reuse by a cache
// wrap tree.
const DefaultFreeListSize = btree.DefaultFreeListSize

// BTreeCacheWrap places a btree cache over a KVStore. Reads fall through to
// the backing store for keys that were not written. Writes stay in the tree
// until Write is called.
type BTreeCacheWrap struct {
	bt   *btree.BTree
	free *btree.FreeList
	back zid.ReadOnlyKVStore
	out  zid.SetDeleter
}

var _ zid.KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a btree cache around the given store. All
// reads not cached go to back, and Write flushes the cached state to out.
//
// free may be nil, but set it to an existing list to reuse nodes.
func NewBTreeCacheWrap(back zid.ReadOnlyKVStore, out zid.SetDeleter, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:   btree.NewWithFreeList(2, free),
		free: free,
		back: back,
		out:  out,
	}
}

// MemStore returns a simple in-memory store, useful for tests. Data written
// to it is kept for the lifetime of the instance. Do not call Write on it.
func MemStore() zid.CacheableKVStore {
	return NewBTreeCacheWrap(EmptyKVStore{}, EmptyKVStore{}, nil)
}

// CacheWrap layers another btree on top of this one.
func (b BTreeCacheWrap) CacheWrap() zid.KVCacheWrap {
	return NewBTreeCacheWrap(b, b, b.free)
}

// Write flushes all cached changes to the underlying store in key order and
// then clears the cache.
func (b BTreeCacheWrap) Write() error {
	var err error
	b.bt.Ascend(func(i btree.Item) bool {
		switch it := i.(type) {
		case setItem:
			err = b.out.Set(it.key, it.value)
		case deletedItem:
			err = b.out.Delete(it.key)
		default:
			err = errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", i)
		}
		return err == nil
	})
	b.Discard()
	if err != nil {
		return errors.Wrap(err, "write cache")
	}
	return nil
}

// Discard drops all cached changes.
func (b BTreeCacheWrap) Discard() {
	b.bt.Clear(true)
}

// Set writes to the btree.
func (b BTreeCacheWrap) Set(key, value []byte) error {
	if key == nil {
		panic("nil key")
	}
	b.bt.ReplaceOrInsert(setItem{bkey{key}, value})
	return nil
}

// Delete marks the key as deleted in the btree.
func (b BTreeCacheWrap) Delete(key []byte) error {
	if key == nil {
		panic("nil key")
	}
	b.bt.ReplaceOrInsert(deletedItem{bkey{key}})
	return nil
}

// Get reads from the btree if present, else from the backing store.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	switch it := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.back.Get(key)
	case setItem:
		return it.value, nil
	case deletedItem:
		return nil, nil
	default:
		return nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", it)
	}
}

// Has reads from the btree if present, else from the backing store.
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	switch it := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.back.Has(key)
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	default:
		return false, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", it)
	}
}

type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item and may be used for queries or
// embedded in data to store.
type bkey struct {
	key []byte
}

func (k bkey) Key() []byte {
	return k.key
}

// Less panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	return bytes.Compare(k.key, item.(keyer).Key()) < 0
}

type deletedItem struct {
	bkey
}

type setItem struct {
	bkey
	value []byte
}

// EmptyKVStore never holds any data. It is used as the base layer of
// MemStore.
type EmptyKVStore struct{}

var _ zid.KVStore = EmptyKVStore{}

func (EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }

func (EmptyKVStore) Has(key []byte) (bool, error) { return false, nil }

func (EmptyKVStore) Set(key, value []byte) error { return nil }

func (EmptyKVStore) Delete(key []byte) error { return nil }
