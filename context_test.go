package zid_test

import (
	"context"
	"testing"
	"time"

	"github.com/tendermint/tendermint/libs/log"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/zidtest/assert"
)

func TestContextHeight(t *testing.T) {
	ctx := context.Background()
	_, ok := zid.GetHeight(ctx)
	assert.Equal(t, false, ok)

	ctx = zid.WithHeight(ctx, 7)
	h, ok := zid.GetHeight(ctx)
	assert.Equal(t, true, ok)
	assert.Equal(t, int64(7), h)

	assert.Panics(t, func() { zid.WithHeight(ctx, 8) })
}

func TestContextChainID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", zid.GetChainID(ctx))

	assert.Panics(t, func() { zid.WithChainID(ctx, "no") })
	assert.Panics(t, func() { zid.WithChainID(ctx, "has space") })

	ctx = zid.WithChainID(ctx, "test-chain")
	assert.Equal(t, "test-chain", zid.GetChainID(ctx))
	assert.Panics(t, func() { zid.WithChainID(ctx, "other-chain") })
}

func TestContextBlockTime(t *testing.T) {
	ctx := context.Background()
	_, err := zid.BlockTime(ctx)
	assert.IsErr(t, errors.ErrHuman, err)

	now := time.Now().UTC()
	ctx = zid.WithBlockTime(ctx, now)
	got, err := zid.BlockTime(ctx)
	assert.Nil(t, err)
	assert.Equal(t, now, got)

	assert.Panics(t, func() { zid.WithBlockTime(ctx, now) })
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, zid.DefaultLogger, zid.GetLogger(ctx))

	logger := log.NewNopLogger()
	ctx = zid.WithLogger(ctx, logger)
	assert.Equal(t, logger, zid.GetLogger(ctx))

	// Logger can be replaced.
	ctx = zid.WithLogInfo(ctx, "module", "sbt")
	if zid.GetLogger(ctx) == nil {
		t.Fatal("logger must be set")
	}
}
