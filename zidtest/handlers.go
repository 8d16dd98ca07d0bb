package zidtest

import "github.com/zeroid/zid"

// Handler is a mock of zid.Handler that counts calls and returns the
// configured results.
type Handler struct {
	checkCall   int
	CheckResult zid.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult zid.DeliverResult
	DeliverErr    error
}

var _ zid.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes a key value pair on every call and then returns Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ zid.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &zid.CheckResult{}, nil
}

func (h *WriteHandler) Deliver(ctx zid.Context, db zid.KVStore, tx zid.Tx) (*zid.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &zid.DeliverResult{}, nil
}

// PanicHandler panics on every call with the given value.
type PanicHandler struct {
	Value interface{}
}

var _ zid.Handler = PanicHandler{}

func (h PanicHandler) Check(zid.Context, zid.KVStore, zid.Tx) (*zid.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(zid.Context, zid.KVStore, zid.Tx) (*zid.DeliverResult, error) {
	panic(h.Value)
}
