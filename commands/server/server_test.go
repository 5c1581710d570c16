package server

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func staticOptions(state string) GenOptions {
	return func(args []string) (json.RawMessage, error) {
		return json.RawMessage(state), nil
	}
}

func TestInitCreatesGenesis(t *testing.T) {
	home, err := ioutil.TempDir("", "swap-init")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	err = InitCmd(staticOptions(`{"wallets":[]}`), log.NewNopLogger(), home, nil)
	require.NoError(t, err)

	doc, err := loadGenesis(GenesisPath(home))
	require.NoError(t, err)
	assert.JSONEq(t, `{"wallets":[]}`, string(doc[appStateKey]))
	assert.Contains(t, string(doc[chainIDKey]), "swap-")

	// second run must not overwrite the state
	err = InitCmd(staticOptions(`{}`), log.NewNopLogger(), home, nil)
	assert.True(t, errors.ErrState.Is(err))
}

func TestInitKeepsTendermintGenesis(t *testing.T) {
	home, err := ioutil.TempDir("", "swap-init")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	genFile := GenesisPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(genFile), 0755))
	orig := `{"chain_id": "existing-chain", "validators": [{"power": "10"}]}`
	require.NoError(t, ioutil.WriteFile(genFile, []byte(orig), 0600))

	err = InitCmd(staticOptions(`{"token":{}}`), log.NewNopLogger(), home, nil)
	require.NoError(t, err)

	doc, err := loadGenesis(genFile)
	require.NoError(t, err)
	assert.JSONEq(t, `"existing-chain"`, string(doc[chainIDKey]))
	assert.JSONEq(t, `[{"power": "10"}]`, string(doc["validators"]))
	assert.JSONEq(t, `{"token":{}}`, string(doc[appStateKey]))
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, StartOptions{Bind: "tcp://localhost:26658", DB: DBIAVL}, opts)

	opts, err = parseFlags([]string{"-bind", "unix://swap.sock", "-debug", "-db", "pebble"})
	require.NoError(t, err)
	assert.Equal(t, StartOptions{Bind: "unix://swap.sock", Debug: true, DB: DBPebble}, opts)

	_, err = parseFlags([]string{"-db", "mongo"})
	assert.Error(t, err)
}
