package sbt

import (
	"context"
	"testing"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/store"
	"github.com/zeroid/zid/zidtest"
	"github.com/zeroid/zid/zidtest/assert"
)

func TestTransferGuard(t *testing.T) {
	recipient := zidtest.NewCondition().Address()

	cases := map[string]struct {
		msg     zid.Msg
		wantErr *errors.Error
		wantRun bool
	}{
		"transfer is rejected": {
			msg:     &TransferMsg{TokenID: 1, Recipient: recipient},
			wantErr: ErrTransferDisabled,
		},
		"empty transfer is rejected": {
			msg:     &TransferMsg{},
			wantErr: ErrTransferDisabled,
		},
		"mint passes": {
			msg:     &MintMsg{Recipient: recipient, MetadataURI: "ipfs://1"},
			wantRun: true,
		},
		"initialize passes": {
			msg:     &InitializeMsg{Issuer: recipient},
			wantRun: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			// The wrapped decorator refuses everything as unauthorized, the
			// way a signature check refuses an unsigned transaction.
			verifier := &zidtest.Decorator{
				CheckErr:   errors.ErrUnauthorized,
				DeliverErr: errors.ErrUnauthorized,
			}
			h := zidtest.Decorate(zidtest.Decorate(&zidtest.Handler{}, verifier), NewTransferGuard())

			wantErr := tc.wantErr
			if tc.wantRun {
				wantErr = errors.ErrUnauthorized
			}
			tx := &zidtest.Tx{Msg: tc.msg}

			_, err := h.Check(context.Background(), store.MemStore(), tx)
			assert.IsErr(t, wantErr, err)
			_, err = h.Deliver(context.Background(), store.MemStore(), tx)
			assert.IsErr(t, wantErr, err)

			calls := 0
			if tc.wantRun {
				calls = 1
			}
			assert.Equal(t, calls, verifier.CheckCallCount())
			assert.Equal(t, calls, verifier.DeliverCallCount())
		})
	}
}
