package gconf

import (
	"encoding/json"
	"testing"

	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
	"github.com/zeroid/zid/store"
	"github.com/zeroid/zid/zidtest/assert"
)

type myConfig struct {
	Number int64       `json:"number"`
	Text   string      `json:"text"`
	Addr   zid.Address `json:"addr"`
}

func (c *myConfig) Marshal() ([]byte, error) {
	return zid.Marshal(c)
}

func (c *myConfig) Unmarshal(bz []byte) error {
	return zid.Unmarshal(bz, c)
}

func (c *myConfig) Validate() error {
	if c.Number < 0 {
		return errors.Wrap(errors.ErrInput, "negative number")
	}
	return errors.AppendField(nil, "Addr", c.Addr.Validate())
}

func TestSaveLoad(t *testing.T) {
	addr := zid.NewAddress([]byte("owner"))

	cases := map[string]struct {
		conf        *myConfig
		wantSaveErr *errors.Error
	}{
		"valid": {
			conf: &myConfig{Number: 42, Text: "foo", Addr: addr},
		},
		"invalid number": {
			conf:        &myConfig{Number: -1, Addr: addr},
			wantSaveErr: errors.ErrInput,
		},
		"missing address": {
			conf:        &myConfig{Number: 1},
			wantSaveErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			err := Save(db, "mypkg", tc.conf)
			assert.IsErr(t, tc.wantSaveErr, err)
			if tc.wantSaveErr != nil {
				var got myConfig
				assert.IsErr(t, errors.ErrNotFound, Load(db, "mypkg", &got))
				return
			}

			var got myConfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.conf, &got)

			// Configurations are kept per package.
			assert.IsErr(t, errors.ErrNotFound, Load(db, "otherpkg", &got))
		})
	}
}

func TestInitConfig(t *testing.T) {
	addr := zid.NewAddress([]byte("owner"))

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    *myConfig
	}{
		"configured": {
			genesis: `{"conf": {"mypkg": {"number": 7, "addr": "` + addr.String() + `"}}}`,
			want:    &myConfig{Number: 7, Addr: addr},
		},
		"no conf section": {
			genesis: `{}`,
			wantErr: errors.ErrNotFound,
		},
		"other package only": {
			genesis: `{"conf": {"otherpkg": {"number": 7}}}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			genesis: `{"conf": {"mypkg": {"number": -7, "addr": "` + addr.String() + `"}}}`,
			wantErr: errors.ErrInput,
		},
		"malformed configuration": {
			genesis: `{"conf": {"mypkg": {"number": "seven"}}}`,
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
			err := InitConfig(db, opts, "mypkg", &myConfig{})
			assert.IsErr(t, tc.wantErr, err)
			if tc.want == nil {
				return
			}
			var got myConfig
			assert.Nil(t, Load(db, "mypkg", &got))
			assert.Equal(t, tc.want, &got)
		})
	}
}

func TestQuery(t *testing.T) {
	db := store.MemStore()
	conf := &myConfig{Number: 3, Addr: zid.NewAddress([]byte("owner"))}
	assert.Nil(t, Save(db, "mypkg", conf))

	models, err := Query{}.Query(db, zid.KeyQueryMod, []byte("mypkg"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(models))
	assert.Equal(t, []byte("_c:mypkg"), models[0].Key)

	var got myConfig
	assert.Nil(t, got.Unmarshal(models[0].Value))
	assert.Equal(t, conf, &got)

	models, err = Query{}.Query(db, zid.KeyQueryMod, []byte("otherpkg"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(models))

	_, err = Query{}.Query(db, "prefix", []byte("mypkg"))
	assert.IsErr(t, errors.ErrInput, err)
}
