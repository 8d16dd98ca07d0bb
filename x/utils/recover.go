package utils

import (
	"fmt"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// Recovery stops a panic raised while processing a transaction. The panic
// becomes an ErrPanic failure of that transaction only and is logged
// together with the path of the message that triggered it.
type Recovery struct{}

var _ zid.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Checker) (res *zid.CheckResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Check(ctx, store, tx)
}

func (Recovery) Deliver(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Deliverer) (res *zid.DeliverResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Deliver(ctx, store, tx)
}

// recoverTx must be deferred directly, recover returns nil otherwise.
func recoverTx(ctx zid.Context, tx zid.Tx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = errors.Wrap(errors.ErrPanic, fmt.Sprint(r))
	zid.GetLogger(ctx).Error("transaction panic", "path", zid.GetPath(tx), "panic", r)
}
