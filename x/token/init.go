package token

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/rent"
)

const optKey = "token"

// GenesisMint registers a mint at MintAddress(Authority, Seed).
type GenesisMint struct {
	Authority tokenswap.Address `json:"authority"`
	Seed      uint64            `json:"seed"`
	Decimals  uint8             `json:"decimals"`
}

// GenesisBalance credits Amount of Mint to the associated account of Owner.
// The mint authority pays the storage deposit.
type GenesisBalance struct {
	Owner  tokenswap.Address `json:"owner"`
	Mint   tokenswap.Address `json:"mint"`
	Amount uint64            `json:"amount"`
}

// Genesis is the "token" section of the genesis file.
type Genesis struct {
	Mints    []GenesisMint    `json:"mints"`
	Balances []GenesisBalance `json:"balances"`
}

// Initializer loads mints and balances. It must run after the rent
// initializer, as every account is charged a storage deposit.
type Initializer struct{}

var _ tokenswap.Initializer = Initializer{}

func (Initializer) FromGenesis(opts tokenswap.Options, db tokenswap.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	ctrl := NewController(nil, rent.NewController())
	for i, m := range gen.Mints {
		if err := m.Authority.Validate(); err != nil {
			return errors.Wrapf(err, "mint #%d authority", i)
		}
		if _, err := ctrl.CreateMint(db, m.Authority, m.Seed, m.Decimals); err != nil {
			return errors.Wrapf(err, "mint #%d", i)
		}
	}
	for i, b := range gen.Balances {
		if err := issue(db, ctrl, b); err != nil {
			return errors.Wrapf(err, "balance #%d", i)
		}
	}
	return nil
}

func issue(db tokenswap.KVStore, ctrl BaseController, b GenesisBalance) error {
	if err := b.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	m, err := ctrl.GetMint(db, b.Mint)
	if err != nil {
		return err
	}
	return ctrl.issue(db, b.Mint, m, b.Owner, b.Amount)
}
