/*
Package iavl provides a persistent zid.CommitKVStore backed by an iavl merkle
tree. Every commit saves a new tree version and its root hash is reported
to tendermint as the application hash.
*/
package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/store"
)

// DefaultCacheSize is the number of tree nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore manages an iavl committed state.
type CommitStore struct {
	db   dbm.DB
	tree *iavl.MutableTree
}

var _ zid.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore creates a new store with a goleveldb backend kept in the
// given directory.
func NewCommitStore(dir, name string) (*CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %s/%s: %s", dir, name, err)
	}
	return newCommitStore(db), nil
}

// NewMemCommitStore creates a store that keeps all versions in memory.
func NewMemCommitStore() *CommitStore {
	return newCommitStore(dbm.NewMemDB())
}

func newCommitStore(db dbm.DB) *CommitStore {
	return &CommitStore{
		db:   db,
		tree: iavl.NewMutableTree(db, DefaultCacheSize),
	}
}

// Get returns the value at the last committed state.
func (s *CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.Get(key)
	return val, nil
}

// Has returns true if the key is present in the committed state.
func (s *CommitStore) Has(key []byte) (bool, error) {
	return s.tree.Has(key), nil
}

// CacheWrap returns a cache that reads the committed state and writes to
// the working tree once flushed.
func (s *CommitStore) CacheWrap() zid.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, treeWriter{s.tree}, nil)
}

// Commit saves the working tree as a new version.
func (s *CommitStore) Commit() (zid.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return zid.CommitID{}, errors.Wrapf(errors.ErrDatabase, "save version: %s", err)
	}
	return zid.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version. If there was a crash
// during the last commit, it is guaranteed to return a stable state, even if
// older.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "load tree: %s", err)
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk.
func (s *CommitStore) LatestVersion() (zid.CommitID, error) {
	return zid.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// Close releases the database.
func (s *CommitStore) Close() {
	s.db.Close()
}

// treeWriter applies flushed cache writes to the working tree.
type treeWriter struct {
	tree *iavl.MutableTree
}

func (w treeWriter) Set(key, value []byte) error {
	// iavl refuses nil values.
	if value == nil {
		value = []byte{}
	}
	w.tree.Set(key, value)
	return nil
}

func (w treeWriter) Delete(key []byte) error {
	w.tree.Remove(key)
	return nil
}
