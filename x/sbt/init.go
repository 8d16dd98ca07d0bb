package sbt

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/gconf"
)

// Initializer fulfils the zid.Initializer interface to load the issuer from
// the genesis file.
type Initializer struct{}

var _ zid.Initializer = (*Initializer)(nil)

// FromGenesis reads the optional "sbt" section:
//
//   "sbt": {"issuer": "zid1..."}
//
// When the issuer is present the registry is initialized with it. The
// ledger configuration is read from "conf" and defaults to
// DefaultConfiguration when missing.
func (*Initializer) FromGenesis(opts zid.Options, kv zid.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, packageName, &conf); err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}

	var state struct {
		Issuer zid.Address `json:"issuer"`
	}
	if err := opts.ReadOptions(packageName, &state); err != nil {
		return errors.Wrapf(errors.ErrInput, "sbt genesis: %s", err)
	}
	if len(state.Issuer) == 0 {
		return nil
	}
	return IssuerRegistry{}.Initialize(kv, state.Issuer)
}
