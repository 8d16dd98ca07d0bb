package sbt

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/x"
)

// RequireIssuer fails with ErrUnauthorized unless the issuer is set and is
// one of the authenticated signers of the current call.
func RequireIssuer(ctx zid.Context, auth x.Authenticator, issuer zid.Address) error {
	if len(issuer) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "issuer not initialized")
	}
	if !auth.HasAddress(ctx, issuer) {
		return errors.Wrapf(errors.ErrUnauthorized, "only %s can mint", issuer)
	}
	return nil
}
