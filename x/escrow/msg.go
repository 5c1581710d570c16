package escrow

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/token"
)

const (
	pathMakeMsg   = "escrow/make"
	pathTakeMsg   = "escrow/take"
	pathCancelMsg = "escrow/cancel"
)

var _ tokenswap.Msg = (*MakeMsg)(nil)

func (MakeMsg) Path() string {
	return pathMakeMsg
}

func (m *MakeMsg) Validate() error {
	if err := m.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := validateAssets(m.AssetA, m.AssetB); err != nil {
		return err
	}
	if m.DepositAmount == 0 {
		return errors.Wrap(errors.ErrAmount, "deposit amount must be positive")
	}
	if m.ReceiveAmount == 0 {
		return errors.Wrap(errors.ErrAmount, "receive amount must be positive")
	}
	return validateDecimals(m.DecimalsA)
}

var _ tokenswap.Msg = (*TakeMsg)(nil)

func (TakeMsg) Path() string {
	return pathTakeMsg
}

func (m *TakeMsg) Validate() error {
	if err := m.Escrow.Validate(); err != nil {
		return errors.Wrap(err, "escrow")
	}
	if m.Taker != nil {
		if err := m.Taker.Validate(); err != nil {
			return errors.Wrap(err, "taker")
		}
	}
	if err := m.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := validateAssets(m.AssetA, m.AssetB); err != nil {
		return err
	}
	if err := validateDecimals(m.DecimalsA); err != nil {
		return err
	}
	return validateDecimals(m.DecimalsB)
}

var _ tokenswap.Msg = (*CancelMsg)(nil)

func (CancelMsg) Path() string {
	return pathCancelMsg
}

func (m *CancelMsg) Validate() error {
	return errors.Wrap(m.Escrow.Validate(), "escrow")
}

func validateAssets(a, b tokenswap.Address) error {
	if err := a.Validate(); err != nil {
		return errors.Wrap(err, "asset a")
	}
	return errors.Wrap(b.Validate(), "asset b")
}

func validateDecimals(d uint32) error {
	if d > token.MaxDecimals {
		return errors.Wrapf(errors.ErrMsg, "decimals must not be greater than %d", token.MaxDecimals)
	}
	return nil
}
