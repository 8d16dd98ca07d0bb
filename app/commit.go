package app

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining different
// cache wraps for deliver and check, and returning useful state info.
type CommitStore struct {
	committed zid.CommitKVStore
	deliver   zid.KVCacheWrap
	check     zid.KVCacheWrap
}

// NewCommitStore loads the CommitKVStore from disk or panics. It sets up
// the deliver and check caches.
func NewCommitStore(store zid.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}
}

// CommitInfo returns the current height and hash.
func (cs *CommitStore) CommitInfo() (zid.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit flushes deliver to the underlying store and commits it to disk. It
// then regenerates new deliver and check caches.
func (cs *CommitStore) Commit() (zid.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return zid.CommitID{}, errors.Wrap(err, "flush deliver state")
	}
	cs.check.Discard()

	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}

	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns the store that must be used during the check phase.
func (cs *CommitStore) CheckStore() zid.CacheableKVStore {
	return cs.check
}

// DeliverStore returns the store that must be used during the delivery
// phase.
func (cs *CommitStore) DeliverStore() zid.CacheableKVStore {
	return cs.deliver
}

// _zid: is the prefix of application internal data.
const chainIDKey = "_zid:chainID"

// mustLoadChainID returns the stored chain id, if any. It panics on a
// database error.
func mustLoadChainID(kv zid.ReadOnlyKVStore) string {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		panic(err)
	}
	return string(v)
}

// saveChainID stores a chain id in the kv store. It fails if one is already
// set or the name is not valid.
func saveChainID(kv zid.KVStore, chainID string) error {
	if !zid.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrChain, "chain id: %q", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrImmutable, "chain id cannot be modified after genesis")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
