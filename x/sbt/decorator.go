package sbt

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// TransferGuard rejects every transfer transaction with ErrTransferDisabled
// before any other check. It belongs in front of the signature verification.
type TransferGuard struct{}

var _ zid.Decorator = TransferGuard{}

// NewTransferGuard returns a decorator refusing all transfers.
func NewTransferGuard() TransferGuard {
	return TransferGuard{}
}

func (TransferGuard) Check(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Checker) (*zid.CheckResult, error) {
	if zid.GetPath(tx) == pathTransferMsg {
		return nil, errors.Wrap(ErrTransferDisabled, "tokens are not transferable")
	}
	return next.Check(ctx, store, tx)
}

func (TransferGuard) Deliver(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Deliverer) (*zid.DeliverResult, error) {
	if zid.GetPath(tx) == pathTransferMsg {
		return nil, errors.Wrap(ErrTransferDisabled, "tokens are not transferable")
	}
	return next.Deliver(ctx, store, tx)
}
