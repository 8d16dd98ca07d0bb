package client

import (
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/zeroid/zid"
)

// TransactionID is the hash used to identify the transaction.
type TransactionID = cmn.HexBytes

// Status is the current status of the node we connect to.
type Status struct {
	ChainID    string
	Height     int64
	CatchingUp bool
}

// CommitResult is returned once a transaction is included in a block.
type CommitResult struct {
	ID     TransactionID
	Height int64
	Result *zid.DeliverResult
}
