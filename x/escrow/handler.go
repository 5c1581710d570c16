package escrow

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/rent"
	"github.com/iov-one/tokenswap/x/token"
	"github.com/tendermint/tendermint/libs/common"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r tokenswap.Registry, auth x.Authenticator, tokens token.Controller, rc rent.Controller) {
	ctrl := newController(tokens, rc)
	r.Handle(pathMakeMsg, MakeHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathTakeMsg, TakeHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathCancelMsg, CancelHandler{auth: auth, ctrl: ctrl})
}

func resultTags(addr tokenswap.Address) []common.KVPair {
	return []common.KVPair{tokenswap.Tag("escrow", []byte(addr.String()))}
}

// MakeHandler opens offers.
type MakeHandler struct {
	auth x.Authenticator
	ctrl controller
}

var _ tokenswap.Handler = MakeHandler{}

// Check verifies the offer can be opened without writing anything.
func (h MakeHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{}, nil
}

// Deliver stores the record and moves the deposit into custody. Result
// data is the record address.
func (h MakeHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, rec, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	addr := rec.Address()
	if err := h.ctrl.open(ctx, db, addr, rec, msg.DepositAmount, uint8(msg.DecimalsA)); err != nil {
		return nil, err
	}
	tokenswap.GetLogger(ctx).Debug("offer opened",
		"escrow", addr,
		"maker", msg.Maker,
		"deposit", token.FormatAmount(msg.DepositAmount, uint8(msg.DecimalsA)),
		"receive", msg.ReceiveAmount)
	return &tokenswap.DeliverResult{Data: addr, Tags: resultTags(addr)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h MakeHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*MakeMsg, *Escrow, error) {
	var msg MakeMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := x.RequireAddress(ctx, h.auth, msg.Maker); err != nil {
		return nil, nil, errors.Wrap(err, "maker")
	}
	addr, bump, err := RecordAddress(msg.Maker, msg.Seed)
	if err != nil {
		return nil, nil, err
	}
	switch has, err := h.ctrl.bucket.Has(db, addr); {
	case err != nil:
		return nil, nil, err
	case has:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "offer with seed %d", msg.Seed)
	}
	mintA, err := h.ctrl.tokens.GetMint(db, msg.AssetA)
	if err != nil {
		return nil, nil, errors.Wrap(err, "asset a")
	}
	if uint32(mintA.Decimals) != msg.DecimalsA {
		return nil, nil, errors.Wrapf(token.ErrAssetMismatch, "asset a has %d decimals, declared %d", mintA.Decimals, msg.DecimalsA)
	}
	if _, err := h.ctrl.tokens.GetMint(db, msg.AssetB); err != nil {
		return nil, nil, errors.Wrap(err, "asset b")
	}
	rec := &Escrow{
		Bump:          bump,
		Seed:          msg.Seed,
		ReceiveAmount: msg.ReceiveAmount,
		Maker:         msg.Maker,
		AssetA:        msg.AssetA,
		AssetB:        msg.AssetB,
	}
	return &msg, rec, nil
}

// TakeHandler fulfills offers.
type TakeHandler struct {
	auth x.Authenticator
	ctrl controller
}

var _ tokenswap.Handler = TakeHandler{}

func (h TakeHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{}, nil
}

// Deliver pays the custody balance to the taker and the requested amount
// of asset B to the maker, then closes the offer.
func (h TakeHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, rec, taker, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// The taker pays for any account the swap needs.
	if _, err := h.ctrl.tokens.EnsureAccount(db, taker, taker, rec.AssetA); err != nil {
		return nil, err
	}
	makerB, err := h.ctrl.tokens.EnsureAccount(db, taker, rec.Maker, rec.AssetB)
	if err != nil {
		return nil, err
	}

	paid, err := h.ctrl.payout(ctx, db, rec, taker, uint8(msg.DecimalsA))
	if err != nil {
		return nil, err
	}
	takerB := token.AccountAddress(taker, rec.AssetB)
	if err := h.ctrl.tokens.TransferChecked(ctx, db, takerB, makerB, rec.AssetB, rec.ReceiveAmount, uint8(msg.DecimalsB)); err != nil {
		return nil, errors.Wrap(err, "payment")
	}
	if err := h.ctrl.close(ctx, db, msg.Escrow, rec); err != nil {
		return nil, err
	}

	tokenswap.GetLogger(ctx).Debug("offer taken",
		"escrow", msg.Escrow,
		"taker", taker,
		"paid", token.FormatAmount(paid, uint8(msg.DecimalsA)),
		"received", token.FormatAmount(rec.ReceiveAmount, uint8(msg.DecimalsB)))
	return &tokenswap.DeliverResult{Tags: resultTags(msg.Escrow)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h TakeHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*TakeMsg, *Escrow, tokenswap.Address, error) {
	var msg TakeMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	// apply a default for taker
	taker := msg.Taker
	if taker == nil {
		taker = x.MainSigner(ctx, h.auth).Address()
	}
	if err := x.RequireAddress(ctx, h.auth, taker); err != nil {
		return nil, nil, nil, errors.Wrap(err, "taker")
	}
	rec, err := h.ctrl.load(db, msg.Escrow)
	if err != nil {
		return nil, nil, nil, err
	}
	switch {
	case !rec.Maker.Equals(msg.Maker):
		return nil, nil, nil, errors.Wrap(ErrRecordMismatch, "maker")
	case !rec.AssetA.Equals(msg.AssetA):
		return nil, nil, nil, errors.Wrap(ErrRecordMismatch, "asset a")
	case !rec.AssetB.Equals(msg.AssetB):
		return nil, nil, nil, errors.Wrap(ErrRecordMismatch, "asset b")
	}
	return &msg, rec, taker, nil
}

// CancelHandler closes offers on behalf of their maker.
type CancelHandler struct {
	auth x.Authenticator
	ctrl controller
}

var _ tokenswap.Handler = CancelHandler{}

func (h CancelHandler) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tokenswap.CheckResult{}, nil
}

// Deliver returns the custody balance to the maker and closes the offer.
func (h CancelHandler) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	msg, rec, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	mintA, err := h.ctrl.tokens.GetMint(db, rec.AssetA)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.tokens.EnsureAccount(db, rec.Maker, rec.Maker, rec.AssetA); err != nil {
		return nil, err
	}
	refunded, err := h.ctrl.payout(ctx, db, rec, rec.Maker, mintA.Decimals)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.close(ctx, db, msg.Escrow, rec); err != nil {
		return nil, err
	}

	tokenswap.GetLogger(ctx).Debug("offer cancelled",
		"escrow", msg.Escrow,
		"refunded", token.FormatAmount(refunded, mintA.Decimals))
	return &tokenswap.DeliverResult{Tags: resultTags(msg.Escrow)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CancelHandler) validate(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx) (*CancelMsg, *Escrow, error) {
	var msg CancelMsg
	if err := tokenswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	rec, err := h.ctrl.load(db, msg.Escrow)
	if err != nil {
		return nil, nil, err
	}
	if err := x.RequireAddress(ctx, h.auth, rec.Maker); err != nil {
		return nil, nil, errors.Wrap(err, "maker")
	}
	return &msg, rec, nil
}
