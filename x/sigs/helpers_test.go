package sigs

import (
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/zidtest"
)

// stdTx is a signed transaction carrying a mock message.
type stdTx struct {
	zidtest.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*stdTx)(nil)

func newStdTx(payload []byte) *stdTx {
	msg := &zidtest.Msg{RoutePath: "test/sigs", Serialized: payload}
	return &stdTx{Tx: zidtest.Tx{Msg: msg}}
}

func (tx *stdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *stdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// sigCheckHandler stores the seen signers on each call.
type sigCheckHandler struct {
	Signers []zid.Condition
}

var _ zid.Handler = (*sigCheckHandler)(nil)

func (s *sigCheckHandler) Check(ctx zid.Context, store zid.KVStore, tx zid.Tx) (*zid.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &zid.CheckResult{}, nil
}

func (s *sigCheckHandler) Deliver(ctx zid.Context, store zid.KVStore, tx zid.Tx) (*zid.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &zid.DeliverResult{}, nil
}
