package app

import (
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// BaseApp adds DeliverTx and CheckTx handlers to the storage and query
// functionality of StoreApp.
type BaseApp struct {
	*StoreApp
	decoder zid.TxDecoder
	handler zid.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application.
func NewBaseApp(store *StoreApp, decoder zid.TxDecoder, handler zid.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx dispatches to the handler.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return zid.DeliverTxError(err, b.debug)
	}

	ctx := zid.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", zid.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return zid.DeliverOrError(res, err, b.debug)
}

// CheckTx dispatches to the handler.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return zid.CheckTxError(err, b.debug)
	}

	ctx := zid.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", zid.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return zid.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and captures any panics.
func (b BaseApp) loadTx(txBytes []byte) (tx zid.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
