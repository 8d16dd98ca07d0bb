package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/store"
	"github.com/zeroid/zid/zidtest"
)

func TestRecovery(t *testing.T) {
	h := zidtest.PanicHandler{Value: "boom"}
	tx := &zidtest.Tx{Msg: &zidtest.Msg{RoutePath: "sbt/mint"}}
	s := store.MemStore()

	assert.Panics(t, func() { _, _ = h.Check(context.Background(), s, tx) })
	assert.Panics(t, func() { _, _ = h.Deliver(context.Background(), s, tx) })

	var buf bytes.Buffer
	ctx := zid.WithLogger(context.Background(), log.NewTMLogger(&buf))
	r := NewRecovery()

	_, err := r.Check(ctx, s, tx, h)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "boom")

	_, err = r.Deliver(ctx, s, tx, h)
	assert.True(t, errors.ErrPanic.Is(err))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "E["), l)
		assert.Contains(t, l, "path=sbt/mint")
	}
}

func TestRecoveryPassesResults(t *testing.T) {
	h := &zidtest.Handler{
		CheckResult: zid.CheckResult{Log: "checked"},
		DeliverErr:  errors.ErrUnauthorized,
	}
	r := NewRecovery()

	res, err := r.Check(context.Background(), store.MemStore(), &zidtest.Tx{}, h)
	assert.NoError(t, err)
	assert.Equal(t, "checked", res.Log)

	_, err = r.Deliver(context.Background(), store.MemStore(), &zidtest.Tx{}, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))
}
