package zidtest

import (
	"context"
	"fmt"

	"github.com/zeroid/zid"
)

// Auth is a mock implementing the x.Authenticator interface. It
// authenticates all referenced conditions, declared either by Signer or by
// Signers.
type Auth struct {
	Signer  zid.Condition
	Signers []zid.Condition
}

func (a *Auth) GetConditions(zid.Context) []zid.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx zid.Context, addr zid.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing the x.Authenticator interface. It stores and
// retrieves conditions from the context.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context.
	Key string
}

func (a *CtxAuth) SetConditions(ctx zid.Context, conds ...zid.Condition) zid.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx zid.Context) []zid.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]zid.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []zid.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx zid.Context, addr zid.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
