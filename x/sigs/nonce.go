package sigs

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// NextNonce returns the nonce that must be used by the next signature of the
// given address. Nonce counting starts with zero.
func NextNonce(db zid.ReadOnlyKVStore, signer zid.Address) (int64, error) {
	var u UserData
	switch err := NewBucket().One(db, signer, &u); {
	case err == nil:
		return u.Sequence, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "bucket get")
	}
}
