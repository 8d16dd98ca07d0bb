package client

import (
	"context"

	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/app"
	"github.com/zeroid/zid/errors"
)

// Client is a tendermint client wrapped to provide simple access to the
// data structures of a zid node.
type Client struct {
	conn Conn
}

// NewClient wraps a Client around an existing tendermint connection.
func NewClient(conn Conn) *Client {
	return &Client{conn: conn}
}

// NewHTTPClient returns a client of the node listening on the given
// tendermint RPC address, for example "http://localhost:26657".
func NewHTTPClient(remote string) *Client {
	return NewClient(NewHTTPConnection(remote))
}

// Status returns the chain id, the current height and other (subjective)
// status info from this node.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	status, err := c.conn.Status()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "status: %s", err)
	}
	return &Status{
		ChainID:    status.NodeInfo.Network,
		Height:     status.SyncInfo.LatestBlockHeight,
		CatchingUp: status.SyncInfo.CatchingUp,
	}, nil
}

// Query runs an abci query and returns all found models. A missing entity
// results in no models and no error.
func (c *Client) Query(ctx context.Context, path string, data []byte) ([]zid.Model, error) {
	res, err := c.conn.ABCIQuery(path, cmn.HexBytes(data))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "query %s: %s", path, err)
	}
	resp := res.Response
	if resp.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(resp.Code, resp.Log)
	}

	var keys, values app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return nil, errors.Wrap(err, "keys")
	}
	if err := values.Unmarshal(resp.Value); err != nil {
		return nil, errors.Wrap(err, "values")
	}
	return app.JoinResults(&keys, &values)
}

// queryOne loads the first value found into dest. It returns false if
// nothing was found.
func (c *Client) queryOne(ctx context.Context, path string, data []byte, dest zid.Persistent) (bool, error) {
	models, err := c.Query(ctx, path, data)
	if err != nil {
		return false, err
	}
	if len(models) == 0 {
		return false, nil
	}
	if err := dest.Unmarshal(models[0].Value); err != nil {
		return false, errors.Wrapf(err, "cannot decode %T", dest)
	}
	return true, nil
}

// CommitTx submits the transaction and blocks until it is included in a
// block. A failure of either check or deliver is returned as an error,
// mapped back to the registered error of the returned code.
func (c *Client) CommitTx(ctx context.Context, tx zid.Tx) (*CommitResult, error) {
	bz, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "marshaling: %s", err)
	}
	res, err := c.conn.BroadcastTxCommit(bz)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetwork, "broadcast tx: %s", err)
	}
	if res.CheckTx.IsErr() {
		return nil, errors.ABCIError(res.CheckTx.Code, res.CheckTx.Log)
	}
	result, err := zid.ParseDeliverOrError(res.DeliverTx)
	if err != nil {
		return nil, err
	}
	return &CommitResult{
		ID:     res.Hash,
		Height: res.Height,
		Result: result,
	}, nil
}
