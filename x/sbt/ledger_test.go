package sbt

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/gconf"
	"github.com/zeroid/zid/store"
	"github.com/zeroid/zid/zidtest"
	"github.com/zeroid/zid/zidtest/assert"
)

// setupLedger returns a ledger with the issuer registered and a context
// authenticated as signers.
func setupLedger(t *testing.T, issuer zid.Address, signers ...zid.Condition) (*Ledger, zid.CacheableKVStore, zid.Context) {
	t.Helper()
	db := store.MemStore()
	if issuer != nil {
		assert.Nil(t, IssuerRegistry{}.Initialize(db, issuer))
	}
	auth := &zidtest.CtxAuth{Key: "auth"}
	ctx := auth.SetConditions(context.Background(), signers...)
	return NewLedger(auth), db, ctx
}

// snapshot reads the values of all the ledger keys for the first n ids.
func snapshot(t *testing.T, db zid.ReadOnlyKVStore, n uint64) map[string]string {
	t.Helper()
	keys := [][]byte{
		[]byte(issuerKey),
		[]byte("_s.sbttoken:id"),
	}
	for id := uint64(0); id <= n; id++ {
		keys = append(keys, NewTokenBucket().DBKey(TokenKey(id)))
	}
	res := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := db.Get(k)
		assert.Nil(t, err)
		res[string(k)] = string(v)
	}
	return res
}

func TestLedgerScenario(t *testing.T) {
	a := zidtest.NewCondition()
	b := zidtest.NewCondition().Address()
	c := zidtest.NewCondition().Address()

	ledger, db, ctx := setupLedger(t, a.Address(), a)

	id, err := ledger.Mint(ctx, db, b, "ipfs://1")
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)

	id, err = ledger.Mint(ctx, db, c, "ipfs://2")
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), id)

	owner, err := ledger.OwnerOf(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, b, owner)
	uri, err := ledger.MetadataOf(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, "ipfs://1", uri)

	owner, err = ledger.OwnerOf(db, 2)
	assert.Nil(t, err)
	assert.Equal(t, c, owner)
	uri, err = ledger.MetadataOf(db, 2)
	assert.Nil(t, err)
	assert.Equal(t, "ipfs://2", uri)

	supply, err := ledger.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), supply)

	assert.IsErr(t, ErrTransferDisabled, ledger.Transfer(ctx, db, 1, c))

	owner, err = ledger.OwnerOf(db, 1)
	assert.Nil(t, err)
	assert.Equal(t, b, owner)
}

func TestLedgerMintSequential(t *testing.T) {
	issuer := zidtest.NewCondition()
	ledger, db, ctx := setupLedger(t, issuer.Address(), zidtest.NewCondition(), issuer)

	const n = 25
	owners := make([]zid.Address, n+1)
	for k := uint64(1); k <= n; k++ {
		owners[k] = zidtest.NewCondition().Address()
		id, err := ledger.Mint(ctx, db, owners[k], "ipfs://"+strings.Repeat("x", int(k)))
		assert.Nil(t, err)
		assert.Equal(t, k, id)

		supply, err := ledger.TotalSupply(db)
		assert.Nil(t, err)
		assert.Equal(t, id, supply)
	}

	// Older records are never affected by later mints.
	for k := uint64(1); k <= n; k++ {
		token, err := ledger.Token(db, k)
		assert.Nil(t, err)
		assert.Equal(t, owners[k], token.Owner)
		assert.Equal(t, "ipfs://"+strings.Repeat("x", int(k)), token.MetadataURI)
	}
}

func TestLedgerMintUnauthorized(t *testing.T) {
	issuer := zidtest.NewCondition()
	stranger := zidtest.NewCondition()
	recipientCond := zidtest.NewCondition()
	recipient := recipientCond.Address()

	cases := map[string]struct {
		issuer  zid.Address
		signers []zid.Condition
	}{
		"not initialized": {
			issuer:  nil,
			signers: []zid.Condition{issuer},
		},
		"no signers": {
			issuer:  issuer.Address(),
			signers: nil,
		},
		"signed by somebody else": {
			issuer:  issuer.Address(),
			signers: []zid.Condition{stranger},
		},
		"recipient cannot mint for itself": {
			issuer:  issuer.Address(),
			signers: []zid.Condition{recipientCond},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ledger, db, ctx := setupLedger(t, tc.issuer, tc.signers...)
			before := snapshot(t, db, 2)

			_, err := ledger.Mint(ctx, db, recipient, "ipfs://1")
			assert.IsErr(t, errors.ErrUnauthorized, err)

			supply, err := ledger.TotalSupply(db)
			assert.Nil(t, err)
			assert.Equal(t, uint64(0), supply)
			assert.Equal(t, before, snapshot(t, db, 2))
		})
	}
}

func TestLedgerMintInvalidToken(t *testing.T) {
	issuer := zidtest.NewCondition()
	recipient := zidtest.NewCondition().Address()

	cases := map[string]struct {
		recipient zid.Address
		uri       string
		wantErr   *errors.Error
	}{
		"missing recipient": {
			recipient: nil,
			uri:       "ipfs://1",
			wantErr:   errors.ErrEmpty,
		},
		"malformed recipient": {
			recipient: zid.Address("short"),
			uri:       "ipfs://1",
			wantErr:   errors.ErrInput,
		},
		"missing metadata": {
			recipient: recipient,
			uri:       "",
			wantErr:   errors.ErrEmpty,
		},
		"metadata too long": {
			recipient: recipient,
			uri:       strings.Repeat("a", MaxMetadataURILength+1),
			wantErr:   errors.ErrInput,
		},
		"control character in metadata": {
			recipient: recipient,
			uri:       "ipfs://1\n",
			wantErr:   errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ledger, db, ctx := setupLedger(t, issuer.Address(), issuer)
			before := snapshot(t, db, 1)

			_, err := ledger.Mint(ctx, db, tc.recipient, tc.uri)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, before, snapshot(t, db, 1))
		})
	}
}

func TestLedgerMintLongestMetadata(t *testing.T) {
	issuer := zidtest.NewCondition()
	ledger, db, ctx := setupLedger(t, issuer.Address(), issuer)

	uri := strings.Repeat("a", MaxMetadataURILength)
	id, err := ledger.Mint(ctx, db, issuer.Address(), uri)
	assert.Nil(t, err)

	got, err := ledger.MetadataOf(db, id)
	assert.Nil(t, err)
	assert.Equal(t, uri, got)
}

func TestLedgerMintConfiguredMetadataLimit(t *testing.T) {
	issuer := zidtest.NewCondition()
	ledger, db, ctx := setupLedger(t, issuer.Address(), issuer)
	assert.Nil(t, gconf.Save(db, packageName, &Configuration{MaxMetadataURILength: 8}))

	_, err := ledger.Mint(ctx, db, issuer.Address(), "ipfs://12")
	assert.FieldError(t, err, "MetadataURI", errors.ErrInput)

	id, err := ledger.Mint(ctx, db, issuer.Address(), "ipfs://1")
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)
}

func TestLedgerMintCounterOverflow(t *testing.T) {
	issuer := zidtest.NewCondition()
	ledger, db, ctx := setupLedger(t, issuer.Address(), issuer)
	assert.Nil(t, TokenSequence().Set(db, math.MaxUint64))

	_, err := ledger.Mint(ctx, db, issuer.Address(), "ipfs://1")
	assert.IsErr(t, errors.ErrOverflow, err)

	supply, err := ledger.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), supply)
}

func TestLedgerMintRefusesToOverwrite(t *testing.T) {
	issuer := zidtest.NewCondition()
	ledger, db, ctx := setupLedger(t, issuer.Address(), issuer)

	// A record that already exists where the next id points to.
	existing := &Token{Owner: issuer.Address(), MetadataURI: "ipfs://old"}
	assert.Nil(t, NewTokenBucket().Put(db, TokenKey(1), existing))

	_, err := ledger.Mint(ctx, db, zidtest.NewCondition().Address(), "ipfs://new")
	assert.IsErr(t, errors.ErrDuplicate, err)

	supply, err := ledger.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), supply)
}

func TestLedgerTokenNotFound(t *testing.T) {
	issuer := zidtest.NewCondition()
	ledger, db, ctx := setupLedger(t, issuer.Address(), issuer)

	for i := 0; i < 3; i++ {
		_, err := ledger.Mint(ctx, db, issuer.Address(), "ipfs://x")
		assert.Nil(t, err)
	}

	for _, id := range []uint64{0, 4, 5, 1000, math.MaxUint64} {
		_, err := ledger.OwnerOf(db, id)
		assert.IsErr(t, ErrTokenNotFound, err)
		_, err = ledger.MetadataOf(db, id)
		assert.IsErr(t, ErrTokenNotFound, err)
	}

	// The counter claims a token exists but there is no record.
	assert.Nil(t, TokenSequence().Set(db, 4))
	_, err := ledger.OwnerOf(db, 4)
	assert.IsErr(t, ErrTokenNotFound, err)
}

func TestLedgerEmptySupply(t *testing.T) {
	ledger, db, _ := setupLedger(t, nil)

	supply, err := ledger.TotalSupply(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), supply)

	_, err = ledger.OwnerOf(db, 1)
	assert.IsErr(t, ErrTokenNotFound, err)
}

func TestLedgerTransferDisabled(t *testing.T) {
	issuer := zidtest.NewCondition()
	stranger := zidtest.NewCondition()
	dest := zidtest.NewCondition().Address()

	callers := map[string][]zid.Condition{
		"issuer":    {issuer},
		"stranger":  {stranger},
		"anonymous": nil,
	}
	destinations := map[string]zid.Address{
		"new owner": dest,
		"issuer":    issuer.Address(),
		"nobody":    nil,
	}
	ids := []uint64{0, 1, 2, 99}

	for callerName, signers := range callers {
		for destName, to := range destinations {
			t.Run(callerName+" to "+destName, func(t *testing.T) {
				ledger, db, _ := setupLedger(t, issuer.Address(), issuer)
				auth := &zidtest.CtxAuth{Key: "auth"}
				issuerCtx := auth.SetConditions(context.Background(), issuer)
				owner := zidtest.NewCondition().Address()
				_, err := ledger.Mint(issuerCtx, db, owner, "ipfs://1")
				assert.Nil(t, err)

				ctx := auth.SetConditions(context.Background(), signers...)
				before := snapshot(t, db, 3)
				for _, id := range ids {
					assert.IsErr(t, ErrTransferDisabled, ledger.Transfer(ctx, db, id, to))
				}
				assert.Equal(t, before, snapshot(t, db, 3))

				got, err := ledger.OwnerOf(db, 1)
				assert.Nil(t, err)
				assert.Equal(t, owner, got)
			})
		}
	}
}
