package escrow

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
	"github.com/iov-one/tokenswap/x/rent"
	"github.com/iov-one/tokenswap/x/token"
)

// controller keeps records and their custody accounts in step.
type controller struct {
	bucket orm.Bucket
	tokens token.Controller
	rent   rent.Controller
}

func newController(tokens token.Controller, rc rent.Controller) controller {
	return controller{
		bucket: NewBucket(),
		tokens: tokens,
		rent:   rc,
	}
}

// RecipientGuard keeps open records closed to plain token transfers, so
// the custody balance only moves through make, take and cancel.
type RecipientGuard struct {
	bucket orm.Bucket
}

var _ token.RecipientGuard = RecipientGuard{}

// NewRecipientGuard returns a guard reading the record bucket.
func NewRecipientGuard() RecipientGuard {
	return RecipientGuard{bucket: NewBucket()}
}

// AcceptRecipient fails with ErrState when owner is an open record.
func (g RecipientGuard) AcceptRecipient(db tokenswap.ReadOnlyKVStore, owner tokenswap.Address) error {
	obj, err := g.bucket.Get(db, owner)
	if err != nil {
		return err
	}
	if obj != nil {
		return errors.Wrapf(errors.ErrState, "escrow %s does not accept transfers", owner)
	}
	return nil
}

func custodyAddress(record, assetA tokenswap.Address) tokenswap.Address {
	return token.AccountAddress(record, assetA)
}

// load returns the record stored at addr, ErrNotFound if it was never
// opened or is already closed.
func (c controller) load(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (*Escrow, error) {
	obj, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "escrow %s", addr)
	}
	rec := obj.Value().(*Escrow)
	if !rec.Address().Equals(addr) {
		return nil, errors.Wrapf(errors.ErrModel, "escrow %s stored under a foreign key", addr)
	}
	return rec, nil
}

// open stores rec at addr and moves amount of asset A from the maker into
// a freshly created custody account. The maker pays both deposits.
func (c controller) open(ctx tokenswap.Context, db tokenswap.KVStore, addr tokenswap.Address, rec *Escrow, amount uint64, decimals uint8) error {
	if err := c.rent.Allocate(db, rec.Maker, addr, RecordSize); err != nil {
		return errors.Wrap(err, "escrow")
	}
	if err := c.bucket.Save(db, orm.NewSimpleObj(addr, rec)); err != nil {
		return err
	}
	custody, err := c.tokens.CreateAccount(db, rec.Maker, addr, rec.AssetA)
	if err != nil {
		return errors.Wrap(err, "custody")
	}
	from := token.AccountAddress(rec.Maker, rec.AssetA)
	return c.tokens.TransferChecked(ctx, db, from, custody, rec.AssetA, amount, decimals)
}

// payout moves the whole custody balance into the associated account of
// recipient and returns the moved amount.
func (c controller) payout(ctx tokenswap.Context, db tokenswap.KVStore, rec *Escrow, recipient tokenswap.Address, decimals uint8) (uint64, error) {
	custody, err := c.tokens.GetAccount(db, rec.Custody())
	if err != nil {
		return 0, errors.Wrap(err, "custody")
	}
	to := token.AccountAddress(recipient, rec.AssetA)
	ctx = withEscrow(ctx, rec.Condition())
	if err := c.tokens.TransferChecked(ctx, db, rec.Custody(), to, rec.AssetA, custody.Amount, decimals); err != nil {
		return 0, err
	}
	return custody.Amount, nil
}

// close deletes the custody account and the record at addr, refunding
// both deposits to the maker.
func (c controller) close(ctx tokenswap.Context, db tokenswap.KVStore, addr tokenswap.Address, rec *Escrow) error {
	ctx = withEscrow(ctx, rec.Condition())
	if err := c.tokens.CloseAccount(ctx, db, rec.Custody(), rec.Maker); err != nil {
		return errors.Wrap(err, "custody")
	}
	if err := c.bucket.Delete(db, addr); err != nil {
		return err
	}
	if _, err := c.rent.Release(db, addr, rec.Maker); err != nil {
		return errors.Wrap(err, "escrow")
	}
	return nil
}
