package server

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// requireOption fails unless the "required" option is a non-empty string.
type requireOption struct{}

func (requireOption) FromGenesis(opts zid.Options, kv zid.KVStore) error {
	var v string
	if err := opts.ReadOptions("required", &v); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if v == "" {
		return errors.Wrap(errors.ErrEmpty, "required")
	}
	return kv.Set([]byte("required"), []byte(v))
}

func TestValidateGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "zid-validate")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
		return path
	}
	valid := write("valid.json", `{"app_state": {"required": "yes"}}`)
	missing := write("missing.json", `{"app_state": {}}`)
	broken := write("broken.json", `{"app_state": `)

	assert.NoError(t, ValidateGenesis(requireOption{}, []string{valid}))

	err = ValidateGenesis(requireOption{}, []string{valid, missing})
	assert.True(t, errors.ErrEmpty.Is(err))

	err = ValidateGenesis(requireOption{}, []string{broken})
	assert.True(t, errors.ErrInput.Is(err))

	err = ValidateGenesis(requireOption{}, []string{filepath.Join(dir, "nope.json")})
	assert.True(t, errors.ErrInput.Is(err))

	err = ValidateGenesis(requireOption{}, nil)
	assert.True(t, errors.ErrInput.Is(err))
}
