package zid_test

import (
	"encoding/json"
	"testing"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/store"
	"github.com/zeroid/zid/zidtest/assert"
)

func TestOptionsReadOptions(t *testing.T) {
	var opts zid.Options
	assert.Nil(t, json.Unmarshal([]byte(`{"sbt": {"issuer": "X"}, "bad": 42}`), &opts))

	var conf struct {
		Issuer string `json:"issuer"`
	}
	assert.Nil(t, opts.ReadOptions("sbt", &conf))
	assert.Equal(t, "X", conf.Issuer)

	// Missing section leaves the destination untouched.
	assert.Nil(t, opts.ReadOptions("missing", &conf))
	assert.Equal(t, "X", conf.Issuer)

	if err := opts.ReadOptions("bad", &conf); err == nil {
		t.Fatal("want decoding error")
	}
}

type keyInit struct {
	key []byte
	err error
}

func (i keyInit) FromGenesis(opts zid.Options, db zid.KVStore) error {
	if i.err != nil {
		return i.err
	}
	return db.Set(i.key, []byte("set"))
}

func TestChainInitializers(t *testing.T) {
	db := store.MemStore()
	chain := zid.ChainInitializers(keyInit{key: []byte("a")}, keyInit{key: []byte("b")})
	assert.Nil(t, chain.FromGenesis(nil, db))
	for _, k := range []string{"a", "b"} {
		ok, err := db.Has([]byte(k))
		assert.Nil(t, err)
		assert.Equal(t, true, ok)
	}

	db = store.MemStore()
	chain = zid.ChainInitializers(keyInit{err: errors.ErrState}, keyInit{key: []byte("c")})
	assert.IsErr(t, errors.ErrState, chain.FromGenesis(nil, db))
	ok, err := db.Has([]byte("c"))
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
}

func TestDeliverOrError(t *testing.T) {
	res := zid.DeliverOrError(&zid.DeliverResult{Data: []byte{1}, Log: "ok"}, nil, false)
	assert.Equal(t, uint32(errors.SuccessABCICode), res.Code)
	parsed, err := zid.ParseDeliverOrError(res)
	assert.Nil(t, err)
	assert.Equal(t, []byte{1}, parsed.Data)

	res = zid.DeliverOrError(nil, errors.Wrap(errors.ErrUnauthorized, "not issuer"), false)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)
	_, err = zid.ParseDeliverOrError(res)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestCheckOrError(t *testing.T) {
	res := zid.CheckOrError(&zid.CheckResult{GasAllocated: 100}, nil, false)
	assert.Equal(t, abci.ResponseCheckTx{GasWanted: 100}, res)

	res = zid.CheckOrError(nil, errors.ErrMsg, false)
	assert.Equal(t, errors.ErrMsg.ABCICode(), res.Code)
}
