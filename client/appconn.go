package client

import (
	"sync"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/p2p"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

// AppConn exposes an in-process abci application as a Conn. Every broadcast
// transaction is checked and then delivered in its own block, which is
// committed right away. It is meant for tests and tooling.
type AppConn struct {
	mu      sync.Mutex
	app     abci.Application
	chainID string
	height  int64
	now     func() time.Time
}

var _ Conn = (*AppConn)(nil)

// NewAppConn wraps the application. The chain must already be initialized
// and at least once committed, or have the given initial height.
func NewAppConn(app abci.Application, chainID string) *AppConn {
	info := app.Info(abci.RequestInfo{})
	return &AppConn{
		app:     app,
		chainID: chainID,
		height:  info.LastBlockHeight,
		now:     time.Now,
	}
}

func (c *AppConn) Status() (*ctypes.ResultStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &ctypes.ResultStatus{
		NodeInfo: p2p.DefaultNodeInfo{Network: c.chainID},
		SyncInfo: ctypes.SyncInfo{LatestBlockHeight: c.height},
	}, nil
}

func (c *AppConn) ABCIQuery(path string, data cmn.HexBytes) (*ctypes.ResultABCIQuery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := c.app.Query(abci.RequestQuery{Path: path, Data: data})
	return &ctypes.ResultABCIQuery{Response: res}, nil
}

func (c *AppConn) BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := &ctypes.ResultBroadcastTxCommit{Hash: tx.Hash()}
	res.CheckTx = c.app.CheckTx(tx)
	if res.CheckTx.IsErr() {
		return res, nil
	}

	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: c.chainID,
			Height:  c.height,
			Time:    c.now().UTC(),
		},
	})
	res.DeliverTx = c.app.DeliverTx(tx)
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	c.app.Commit()
	res.Height = c.height
	return res, nil
}
