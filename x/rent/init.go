package rent

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
)

const walletsOptKey = "wallets"

// GenesisWallet is a native balance in the genesis file.
type GenesisWallet struct {
	Address tokenswap.Address `json:"address"`
	Amount  uint64            `json:"amount"`
}

// Initializer loads the rent configuration from "conf.rent" and native
// balances from "wallets".
type Initializer struct{}

var _ tokenswap.Initializer = Initializer{}

func (Initializer) FromGenesis(opts tokenswap.Options, db tokenswap.KVStore) error {
	if err := gconf.InitConfig(db, opts, configPkg, &Config{}); err != nil {
		return err
	}
	var wallets []GenesisWallet
	if err := opts.ReadOptions(walletsOptKey, &wallets); err != nil {
		return err
	}
	ctrl := NewController()
	for i, w := range wallets {
		if err := ctrl.Credit(db, w.Address, w.Amount); err != nil {
			return errors.Wrapf(err, "wallet #%d", i)
		}
	}
	return nil
}
