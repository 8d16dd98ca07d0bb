package sbt

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// issuerKey is where the issuer is kept. There is only one per chain.
const issuerKey = "_sbt:issuer"

// IssuerRegistry gives access to the issuer slot.
type IssuerRegistry struct{}

// Initialize stores the issuer. It fails with ErrDuplicateInitialization if
// an issuer was already set, without modifying the store.
func (IssuerRegistry) Initialize(db zid.KVStore, issuer zid.Address) error {
	obj := Issuer{Address: issuer}
	if err := obj.Validate(); err != nil {
		return errors.Wrap(err, "issuer")
	}
	switch exists, err := db.Has([]byte(issuerKey)); {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case exists:
		return errors.Wrap(ErrDuplicateInitialization, "issuer is immutable")
	}
	raw, err := obj.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot serialize")
	}
	if err := db.Set([]byte(issuerKey), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Issuer returns the registered issuer, or nil if the registry was never
// initialized.
func (IssuerRegistry) Issuer(db zid.ReadOnlyKVStore) (zid.Address, error) {
	raw, err := db.Get([]byte(issuerKey))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, nil
	}
	var obj Issuer
	if err := obj.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "cannot load issuer")
	}
	return obj.Address, nil
}

// issuerQuery returns the issuer record, ignoring the query data.
type issuerQuery struct{}

func (issuerQuery) Query(db zid.ReadOnlyKVStore, mod string, _ []byte) ([]zid.Model, error) {
	if mod != zid.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
	raw, err := db.Get([]byte(issuerKey))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, nil
	}
	return []zid.Model{zid.Pair([]byte(issuerKey), raw)}, nil
}
