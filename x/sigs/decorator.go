package sigs

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// Decorator verifies the signatures and adds the signers to the context.
type Decorator struct {
	allowMissingSigs bool
}

var _ zid.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator, which requires
// at least one signature to be present.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs allows passing along transactions with no signatures.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies signatures before calling down the stack.
func (d Decorator) Check(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Checker) (*zid.CheckResult, error) {
	ctx, err := d.withSigners(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver verifies signatures before calling down the stack.
func (d Decorator) Deliver(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Deliverer) (*zid.DeliverResult, error) {
	ctx, err := d.withSigners(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) withSigners(ctx zid.Context, store zid.KVStore, tx zid.Tx) (zid.Context, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		if d.allowMissingSigs {
			return ctx, nil
		}
		return nil, errors.Wrap(errors.ErrUnauthorized, "unsigned transaction")
	}

	signers, err := VerifyTxSignatures(store, stx, zid.GetChainID(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), nil
}
