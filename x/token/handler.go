package token

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x"
	"github.com/tendermint/tendermint/libs/common"
)

// RecipientGuard vetoes transfers to owners whose accounts only move
// through their own extension, like the custody of an open escrow.
type RecipientGuard interface {
	AcceptRecipient(db tokenswap.ReadOnlyKVStore, owner tokenswap.Address) error
}

// RegisterRoutes will instantiate and register all handlers in this package
func RegisterRoutes(r tokenswap.Registry, auth x.Authenticator, ctrl BaseController, guards ...RecipientGuard) {
	r.Handle(pathCreateMintMsg, CreateMintHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathMintToMsg, MintToHandler{ctrl: ctrl})
	r.Handle(pathTransferMsg, TransferHandler{auth: auth, ctrl: ctrl, guards: guards})
}

// CreateMintHandler registers mints.
type CreateMintHandler struct {
	auth x.Authenticator
	ctrl BaseController
}

var _ tokenswap.Handler = CreateMintHandler{}

func (h CreateMintHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{}, nil
}

func (h CreateMintHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	addr, err := h.ctrl.CreateMint(db, msg.Authority, msg.Seed, uint8(msg.Decimals))
	if err != nil {
		return nil, err
	}
	tokenswap.GetLogger(ctx).Debug("mint created", "mint", addr, "decimals", msg.Decimals)
	return &tokenswap.DeliverResult{
		Data: addr,
		Tags: []common.KVPair{tokenswap.Tag("mint", []byte(addr.String()))},
	}, nil
}

func (h CreateMintHandler) validate(ctx tokenswap.Context, tx tokenswap.Tx) (*CreateMintMsg, error) {
	var msg CreateMintMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Authority); err != nil {
		return nil, err
	}
	return &msg, nil
}

// MintToHandler issues new tokens. The controller authorizes the mint
// authority.
type MintToHandler struct {
	ctrl BaseController
}

var _ tokenswap.Handler = MintToHandler{}

func (h MintToHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	var msg MintToMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ctrl.GetMint(db, msg.Mint); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{}, nil
}

func (h MintToHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	var msg MintToMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.MintTo(ctx, db, msg.Mint, msg.Recipient, msg.Amount); err != nil {
		return nil, err
	}
	return &tokenswap.DeliverResult{}, nil
}

// TransferHandler moves tokens between associated accounts. The
// recipient account is created if needed, paid for by the source.
type TransferHandler struct {
	auth   x.Authenticator
	ctrl   BaseController
	guards []RecipientGuard
}

var _ tokenswap.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{}, nil
}

func (h TransferHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	to, err := h.ctrl.EnsureAccount(db, msg.Source, msg.Recipient, msg.Mint)
	if err != nil {
		return nil, err
	}
	from := AccountAddress(msg.Source, msg.Mint)
	if err := h.ctrl.TransferChecked(ctx, db, from, to, msg.Mint, msg.Amount, uint8(msg.Decimals)); err != nil {
		return nil, err
	}
	tokenswap.GetLogger(ctx).Debug("transfer",
		"mint", msg.Mint,
		"amount", FormatAmount(msg.Amount, uint8(msg.Decimals)))
	return &tokenswap.DeliverResult{}, nil
}

func (h TransferHandler) validate(ctx tokenswap.Context, db tokenswap.ReadOnlyKVStore, tx tokenswap.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Source); err != nil {
		return nil, err
	}
	for _, g := range h.guards {
		if err := g.AcceptRecipient(db, msg.Recipient); err != nil {
			return nil, errors.Wrap(err, "recipient")
		}
	}
	return &msg, nil
}
