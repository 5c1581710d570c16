package token

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

const (
	pathCreateMintMsg = "token/create_mint"
	pathMintToMsg     = "token/mint_to"
	pathTransferMsg   = "token/transfer"
)

var _ tokenswap.Msg = (*CreateMintMsg)(nil)

func (CreateMintMsg) Path() string {
	return pathCreateMintMsg
}

func (m *CreateMintMsg) Validate() error {
	if err := m.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if m.Decimals > MaxDecimals {
		return errors.Wrapf(errors.ErrMsg, "decimals must not be greater than %d", MaxDecimals)
	}
	return nil
}

var _ tokenswap.Msg = (*MintToMsg)(nil)

func (MintToMsg) Path() string {
	return pathMintToMsg
}

func (m *MintToMsg) Validate() error {
	if err := m.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	return nil
}

var _ tokenswap.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	if err := m.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	if m.Decimals > MaxDecimals {
		return errors.Wrapf(errors.ErrMsg, "decimals must not be greater than %d", MaxDecimals)
	}
	return nil
}
