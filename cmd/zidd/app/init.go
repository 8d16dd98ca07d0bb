package app

import (
	"encoding/json"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// GenInitOptions produces the genesis app state. The only argument is the
// issuer address. Without it the issuer must be registered with an
// InitializeMsg after the chain started.
func GenInitOptions(args []string) (json.RawMessage, error) {
	type sbtOptions struct {
		Issuer zid.Address `json:"issuer,omitempty"`
	}
	var opts sbtOptions

	switch len(args) {
	case 0:
	case 1:
		addr, err := zid.ParseAddress(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "issuer")
		}
		opts.Issuer = addr
	default:
		return nil, errors.Wrap(errors.ErrInput, "usage: init [issuer]")
	}

	raw, err := json.MarshalIndent(map[string]interface{}{"sbt": opts}, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}
