package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/rent"
	"github.com/iov-one/tokenswap/x/token"
)

// Bech32Prefix is the human readable part of printed addresses.
const Bech32Prefix = "swap"

// default genesis values for dev mode
const (
	devNative   = 1000000000
	devPerByte  = 1
	devBase     = 100
	devDecimals = 6
	devSupply   = 1000000000000
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// The optional first argument is the owner address, in any format
// understood by tokenswap.ParseAddress. Without it a key is generated
// and printed. The optional second argument is the decimals of the
// two dev mints, the optional third the balance of each in whole
// tokens, such as "1500.25".
func GenInitOptions(args []string) (json.RawMessage, error) {
	var owner tokenswap.Address
	if len(args) > 0 {
		addr, err := tokenswap.ParseAddress(args[0])
		if err != nil {
			return nil, err
		}
		owner = addr
	} else {
		addr, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		owner = addr
		fmt.Println(keys)
	}

	decimals := uint8(devDecimals)
	if len(args) > 1 {
		d, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil || d > token.MaxDecimals {
			return nil, errors.Wrapf(errors.ErrInput, "invalid decimals %q", args[1])
		}
		decimals = uint8(d)
	}

	supply := uint64(devSupply)
	if len(args) > 2 {
		amount, err := token.ParseAmount(args[2], decimals)
		if err != nil {
			return nil, err
		}
		supply = amount
	}

	mints := []token.GenesisMint{
		{Authority: owner, Seed: 1, Decimals: decimals},
		{Authority: owner, Seed: 2, Decimals: decimals},
	}
	var balances []token.GenesisBalance
	for _, m := range mints {
		balances = append(balances, token.GenesisBalance{
			Owner:  owner,
			Mint:   token.MintAddress(m.Authority, m.Seed),
			Amount: supply,
		})
	}

	state := map[string]interface{}{
		"conf": map[string]interface{}{
			"rent": rent.Config{PerByte: devPerByte, Base: devBase},
		},
		"wallets": []rent.GenesisWallet{
			{Address: owner, Amount: devNative},
		},
		"token": token.Genesis{
			Mints:    mints,
			Balances: balances,
		},
	}
	return json.MarshalIndent(state, "", "  ")
}

type output struct {
	Address string `json:"address"`
	Bech32  string `json:"bech32"`
	Pubkey  string `json:"pub_key"`
	Secret  string `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give tokens to this address and
// import the keys in a client to use them
func GenerateCoinKey() (tokenswap.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	b32, err := addr.Bech32(Bech32Prefix)
	if err != nil {
		return nil, "", err
	}
	out := output{
		Address: addr.String(),
		Bech32:  b32,
		Pubkey:  hex.EncodeToString(pubKey.GetEd25519()),
		Secret:  hex.EncodeToString(privKey.GetEd25519()),
	}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return addr, string(keys), nil
}
