package server

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/tokenswap/errors"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	appStateKey = "app_state"
	chainIDKey  = "chain_id"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisPath returns the location of the genesis file under home.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd will add app_state to the genesis file in home. The file is
// created with a random chain id when tendermint did not create one yet.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	logger.Info("Loading GenesisDoc")
	genFile := GenesisPath(home)

	doc, err := loadGenesis(genFile)
	if err != nil {
		return err
	}
	if _, ok := doc[appStateKey]; ok {
		return errors.Wrap(errors.ErrState, "app_state already set")
	}
	if _, ok := doc[chainIDKey]; !ok {
		id, err := json.Marshal(fmt.Sprintf("swap-%s", cmn.RandStr(6)))
		if err != nil {
			return err
		}
		doc[chainIDKey] = id
	}

	options, err := gen(args)
	if err != nil {
		return err
	}
	doc[appStateKey] = options

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serialize genesis")
	}
	if err := os.MkdirAll(filepath.Dir(genFile), 0755); err != nil {
		return errors.Wrap(err, "genesis directory")
	}
	if err := ioutil.WriteFile(genFile, out, 0600); err != nil {
		return errors.Wrap(err, "write genesis")
	}
	logger.Info("App initialized", "path", genFile)
	return nil
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func loadGenesis(filename string) (GenesisDoc, error) {
	bz, err := ioutil.ReadFile(filename)
	if os.IsNotExist(err) {
		return GenesisDoc{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read genesis")
	}
	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return doc, nil
}
