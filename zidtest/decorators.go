package zidtest

import "github.com/zeroid/zid"

// Decorator is a mock implementation of the zid.Decorator interface.
//
// Set CheckErr or DeliverErr to force an error response for the
// corresponding method. Otherwise the wrapped handler is called. Each method
// call is counted.
type Decorator struct {
	checkCall int
	CheckErr  error

	deliverCall int
	DeliverErr  error
}

var _ zid.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx zid.Context, db zid.KVStore, tx zid.Tx, next zid.Checker) (*zid.CheckResult, error) {
	d.checkCall++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx zid.Context, db zid.KVStore, tx zid.Tx, next zid.Deliverer) (*zid.DeliverResult, error) {
	d.deliverCall++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

// Decorate wraps given handler with a single decorator.
func Decorate(h zid.Handler, d zid.Decorator) zid.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn zid.Handler
	dc zid.Decorator
}

func (d *decoratedHandler) Check(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
