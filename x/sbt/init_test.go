package sbt

import (
	"encoding/json"
	"testing"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/store"
	"github.com/zeroid/zid/zidtest"
	"github.com/zeroid/zid/zidtest/assert"
)

func TestGenesis(t *testing.T) {
	issuer := zidtest.NewCondition().Address()
	bech, err := issuer.Bech32()
	assert.Nil(t, err)

	cases := map[string]struct {
		genesis    string
		wantErr    *errors.Error
		wantIssuer zid.Address
	}{
		"no sbt section": {
			genesis: `{}`,
		},
		"no issuer": {
			genesis: `{"sbt": {}}`,
		},
		"hex issuer": {
			genesis:    `{"sbt": {"issuer": "` + issuer.String() + `"}}`,
			wantIssuer: issuer,
		},
		"bech32 issuer": {
			genesis:    `{"sbt": {"issuer": "` + bech + `"}}`,
			wantIssuer: issuer,
		},
		"configured limit": {
			genesis:    `{"conf": {"sbt": {"max_metadata_uri_length": 16}}, "sbt": {"issuer": "` + issuer.String() + `"}}`,
			wantIssuer: issuer,
		},
		"limit above the maximum": {
			genesis: `{"conf": {"sbt": {"max_metadata_uri_length": 4096}}}`,
			wantErr: errors.ErrInput,
		},
		"malformed issuer": {
			genesis: `{"sbt": {"issuer": "zid1notanaddress"}}`,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts zid.Options
			if err := json.Unmarshal([]byte(tc.genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}
			db := store.MemStore()
			var ini Initializer
			assert.IsErr(t, tc.wantErr, ini.FromGenesis(opts, db))

			got, err := IssuerRegistry{}.Issuer(db)
			assert.Nil(t, err)
			if tc.wantIssuer == nil {
				assert.Nil(t, got)
			} else {
				assert.Equal(t, tc.wantIssuer, got)
			}
		})
	}
}

func TestGenesisIsLikeInitialize(t *testing.T) {
	issuer := zidtest.NewCondition()
	opts := zid.Options{"sbt": json.RawMessage(`{"issuer": "` + issuer.Address().String() + `"}`)}

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	err := IssuerRegistry{}.Initialize(db, zidtest.NewCondition().Address())
	assert.IsErr(t, ErrDuplicateInitialization, err)
}

func TestGenesisConfiguration(t *testing.T) {
	opts := zid.Options{"conf": json.RawMessage(`{"sbt": {"max_metadata_uri_length": 16}}`)}
	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	conf, err := loadConfiguration(db)
	assert.Nil(t, err)
	assert.Equal(t, Configuration{MaxMetadataURILength: 16}, conf)

	conf, err = loadConfiguration(store.MemStore())
	assert.Nil(t, err)
	assert.Equal(t, DefaultConfiguration(), conf)
}
