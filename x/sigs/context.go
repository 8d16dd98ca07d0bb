package sigs

import (
	"context"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/x"
)

type contextKey int

const (
	contextKeySigners contextKey = iota
)

// withSigners is private, as only this package can add a signer.
func withSigners(ctx zid.Context, signers []zid.Condition) zid.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate gives access to the signers verified by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the conditions of everyone who signed the current
// transaction. May be empty.
func (Authenticate) GetConditions(ctx zid.Context) []zid.Condition {
	val, _ := ctx.Value(contextKeySigners).([]zid.Condition)
	return val
}

// HasAddress returns true if the given address signed the current
// transaction.
func (a Authenticate) HasAddress(ctx zid.Context, addr zid.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
