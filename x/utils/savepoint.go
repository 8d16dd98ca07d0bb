package utils

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// Savepoint isolates all data written inside of the call, and commits or
// rolls back depending on the returned error.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ zid.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator, but you must call OnCheck or
// OnDeliver so it will be triggered.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver returns a savepoint that will trigger on DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

// Check will optionally set a savepoint.
func (s Savepoint) Check(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Checker) (*zid.CheckResult, error) {
	cstore, ok := store.(zid.CacheableKVStore)
	if !s.onCheck || !ok {
		return next.Check(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

// Deliver will optionally set a savepoint.
func (s Savepoint) Deliver(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Deliverer) (*zid.DeliverResult, error) {
	cstore, ok := store.(zid.CacheableKVStore)
	if !s.onDeliver || !ok {
		return next.Deliver(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}
