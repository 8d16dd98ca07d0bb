package app

import (
	"context"
	"testing"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/zidtest"
	"github.com/zeroid/zid/zidtest/assert"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	var (
		msg     = &zidtest.Msg{RoutePath: "test/1"}
		handler = &zidtest.Handler{}
	)
	r.Handle(msg, handler)

	tx := &zidtest.Tx{Msg: msg}
	if _, err := r.Check(context.TODO(), nil, tx); err != nil {
		t.Fatalf("check failed: %s", err)
	}
	if _, err := r.Deliver(context.TODO(), nil, tx); err != nil {
		t.Fatalf("delivery failed: %s", err)
	}
	if got := handler.CallCount(); got != 2 {
		t.Fatalf("want 2 calls, got %d", got)
	}
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()

	tx := &zidtest.Tx{Msg: &zidtest.Msg{RoutePath: "test/1"}}

	_, err := r.Check(context.TODO(), nil, tx)
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = r.Deliver(context.TODO(), nil, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestRouterMsgError(t *testing.T) {
	r := NewRouter()
	tx := &zidtest.Tx{Err: errors.ErrMsg.New("broken")}

	_, err := r.Check(context.TODO(), nil, tx)
	assert.IsErr(t, errors.ErrMsg, err)
}

func TestRegisteringInvalidPath(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"dash":             "test-1",
		"white characters": "test 1",
		"dot":              "test.1",
	}
	for testName, path := range cases {
		t.Run(testName, func(t *testing.T) {
			r := NewRouter()
			assert.Panics(t, func() {
				r.Handle(&zidtest.Msg{RoutePath: path}, &zidtest.Handler{})
			})
		})
	}
}

func TestRegisteringDuplicatedPath(t *testing.T) {
	r := NewRouter()
	msg := &zidtest.Msg{RoutePath: "sbt/mint"}
	r.Handle(msg, &zidtest.Handler{})

	assert.Panics(t, func() {
		r.Handle(msg, &zidtest.Handler{})
	})
}

var _ zid.Registry = NewRouter()
