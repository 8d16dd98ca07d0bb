package gconf

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// ReadStore is a subset of zid.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of zid.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is implemented by every object kept in the store.
type Configuration interface {
	zid.Persistent
	zid.Validater
}

func key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates the object before writing it to the configuration
// singleton of the given package.
func Save(db Store, pkg string, src Configuration) error {
	k := key(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", k)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", k)
	}
	if err := db.Set(k, raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Load reads the configuration of the given package into dst. It returns
// ErrNotFound if the package was never configured.
func Load(db ReadStore, pkg string, dst Configuration) error {
	k := key(pkg)
	raw, err := db.Get(k)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", k)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", k)
	}
	return nil
}

// InitConfig takes opts["conf"][pkg], parses it into the given object,
// validates and stores it. It returns ErrNotFound if the genesis has no
// configuration for the package.
func InitConfig(db Store, opts zid.Options, pkg string, conf Configuration) error {
	var confOptions zid.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrapf(errors.ErrInput, "read conf: %s", err)
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "read configuration for %s: %s", pkg, err)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}

// Query returns the raw configuration of the package named by the query
// data. Nothing is returned for a package without configuration.
type Query struct{}

var _ zid.QueryHandler = Query{}

// RegisterQuery exposes configurations under "/conf".
func RegisterQuery(qr zid.QueryRouter) {
	qr.Register("/conf", Query{})
}

func (Query) Query(db zid.ReadOnlyKVStore, mod string, data []byte) ([]zid.Model, error) {
	if mod != zid.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
	k := key(string(data))
	raw, err := db.Get(k)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, nil
	}
	return []zid.Model{zid.Pair(k, raw)}, nil
}
