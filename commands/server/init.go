package server

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/zeroid/zid/errors"
)

// GenOptions can parse command-line arguments to generate the app_state
// of the genesis file. This is application-specific.
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisPath returns the location of the tendermint genesis file for the
// given home directory.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd writes the app_state generated by gen into the genesis file. A
// genesis file with a random chain id is created if none exists yet, for
// example when tendermint was not initialized in the same home directory.
// An existing app_state is never overwritten.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	options, err := gen(args)
	if err != nil {
		return err
	}

	genFile := GenesisPath(home)
	if !fileExists(genFile) {
		if err := writeEmptyGenesis(genFile); err != nil {
			return err
		}
		logger.Info("Generated genesis file", "path", genFile)
	} else {
		logger.Info("Found genesis file", "path", genFile)
	}
	if err := addGenesisOptions(genFile, options); err != nil {
		return err
	}
	logger.Info("App state initialized", "path", genFile)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// GenesisDoc involves some tendermint-specific structures we don't want to
// parse, so we just grab it into a raw object format.
type GenesisDoc map[string]json.RawMessage

func writeEmptyGenesis(filename string) error {
	doc := map[string]interface{}{
		"genesis_time": time.Now().UTC(),
		"chain_id":     fmt.Sprintf("zid-%s", cmn.RandStr(6)),
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if err := ioutil.WriteFile(filename, out, 0600); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func addGenesisOptions(filename string, options json.RawMessage) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse genesis: %s", err)
	}
	if state, ok := doc["app_state"]; ok && len(state) > 0 && string(state) != "null" {
		return errors.Wrap(errors.ErrState, "app_state already set")
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(filename, out, 0600); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
