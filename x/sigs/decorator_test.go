package sigs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/crypto"
	"github.com/zeroid/zid/store"
	"github.com/zeroid/zid/zidtest"
)

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(sigCheckHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := zid.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	conds := []zid.Condition{priv.PublicKey().Condition()}

	tx := newStdTx([]byte("art"))
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec zid.Decorator, my zid.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec zid.Decorator, my zid.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	for i, fn := range []func(zid.Decorator, zid.Tx) error{check, deliver} {
		tx.Signatures = nil
		assert.Error(t, fn(d, tx), "%d", i)

		tx.Signatures = []*StdSignature{sig}
		assert.NoError(t, fn(d, tx), "%d", i)
		assert.Equal(t, conds, signers.Signers)

		// replay
		err := fn(d, tx)
		assert.True(t, ErrInvalidSequence.Is(err), "%d: %v", i, err)

		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		assert.NoError(t, fn(ad, tx), "%d", i)
		assert.Equal(t, []zid.Condition{}, signers.Signers)

		tx.Signatures = []*StdSignature{sig1}
		assert.NoError(t, fn(ad, tx), "%d", i)
		assert.Equal(t, conds, signers.Signers)
	}
}

func TestDecoratorUnsignedTx(t *testing.T) {
	ctx := zid.WithChainID(context.Background(), "unsigned")
	tx := &zidtest.Tx{Msg: &zidtest.Msg{RoutePath: "test/sigs"}}
	h := &zidtest.Handler{}

	_, err := NewDecorator().Deliver(ctx, store.MemStore(), tx, h)
	assert.Error(t, err)
	assert.Equal(t, 0, h.CallCount())

	_, err = NewDecorator().AllowMissingSigs().Deliver(ctx, store.MemStore(), tx, h)
	assert.NoError(t, err)
	assert.Equal(t, 1, h.CallCount())
}

func TestWrongChainSignature(t *testing.T) {
	kv := store.MemStore()
	ctx := zid.WithChainID(context.Background(), "right-chain")
	priv := crypto.GenPrivKeyEd25519()

	tx := newStdTx([]byte("payload"))
	sig, err := SignTx(priv, tx, "wrong-chain", 0)
	require.NoError(t, err)
	tx.Signatures = []*StdSignature{sig}

	_, err = NewDecorator().Deliver(ctx, kv, tx, new(sigCheckHandler))
	assert.Error(t, err)

	nonce, err := NextNonce(kv, priv.PublicKey().Address())
	require.NoError(t, err)
	assert.Equal(t, int64(0), nonce)
}
