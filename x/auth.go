package x

import (
	"github.com/zeroid/zid"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. It is passed into the constructors of handlers, so that
// extensions never depend on a concrete authentication system.
type Authenticator interface {
	// GetConditions reveals all conditions fulfilled by the current call.
	GetConditions(zid.Context) []zid.Condition
	// HasAddress checks if any condition matches this address.
	HasAddress(zid.Context, zid.Address) bool
}

// MultiAuth chains together many Authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all conditions from all Authenticators.
func (m MultiAuth) GetConditions(ctx zid.Context) []zid.Condition {
	var res []zid.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator supports this address.
func (m MultiAuth) HasAddress(ctx zid.Context, addr zid.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any Authenticator.
func GetAddresses(ctx zid.Context, auth Authenticator) []zid.Address {
	conds := auth.GetConditions(ctx)
	addrs := make([]zid.Address, len(conds))
	for i, c := range conds {
		addrs[i] = c.Address()
	}
	return addrs
}

// MainSigner returns the first condition if any, otherwise nil.
func MainSigner(ctx zid.Context, auth Authenticator) zid.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}
