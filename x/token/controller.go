package token

import (
	"math/bits"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
	"github.com/iov-one/tokenswap/x"
	"github.com/iov-one/tokenswap/x/rent"
)

// Controller moves balances between accounts. Every method that takes
// funds out of an account requires the account owner to be authorized in
// the context.
type Controller interface {
	// GetMint returns the registered mint, ErrNotFound if missing.
	GetMint(db tokenswap.ReadOnlyKVStore, mint tokenswap.Address) (*Mint, error)
	// GetAccount returns the account stored at addr, ErrNotFound if missing.
	GetAccount(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (*Account, error)
	// CreateAccount allocates the associated account of owner for mint,
	// charging payer the storage deposit. ErrDuplicate is returned if the
	// account exists.
	CreateAccount(db tokenswap.KVStore, payer, owner, mint tokenswap.Address) (tokenswap.Address, error)
	// EnsureAccount is like CreateAccount, but an existing account is
	// returned as it is.
	EnsureAccount(db tokenswap.KVStore, payer, owner, mint tokenswap.Address) (tokenswap.Address, error)
	// TransferChecked moves amount between two accounts of mint. The
	// declared decimals must match the mint.
	TransferChecked(ctx tokenswap.Context, db tokenswap.KVStore, from, to, mint tokenswap.Address, amount uint64, decimals uint8) error
	// CloseAccount deletes an empty account and refunds its storage
	// deposit to dest.
	CloseAccount(ctx tokenswap.Context, db tokenswap.KVStore, addr, dest tokenswap.Address) error
}

// BaseController is the store backed Controller.
type BaseController struct {
	auth     x.Authenticator
	rent     rent.Controller
	mints    orm.Bucket
	accounts orm.Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller authorizing owners with auth and
// charging storage through rc.
func NewController(auth x.Authenticator, rc rent.Controller) BaseController {
	return BaseController{
		auth:     auth,
		rent:     rc,
		mints:    NewMintBucket(),
		accounts: NewAccountBucket(),
	}
}

func (c BaseController) GetMint(db tokenswap.ReadOnlyKVStore, mint tokenswap.Address) (*Mint, error) {
	obj, err := c.mints.Get(db, mint)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "mint %s", mint)
	}
	return obj.Value().(*Mint), nil
}

func (c BaseController) GetAccount(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (*Account, error) {
	obj, err := c.accounts.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "token account %s", addr)
	}
	return obj.Value().(*Account), nil
}

// CreateMint registers a mint for authority, charging authority the
// storage deposit.
func (c BaseController) CreateMint(db tokenswap.KVStore, authority tokenswap.Address, seed uint64, decimals uint8) (tokenswap.Address, error) {
	addr := MintAddress(authority, seed)
	mint := &Mint{Decimals: decimals, Authority: authority.Clone()}
	if err := mint.Validate(); err != nil {
		return nil, err
	}
	if err := c.rent.Allocate(db, authority, addr, MintSize); err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	if err := c.mints.Save(db, orm.NewSimpleObj(addr, mint)); err != nil {
		return nil, err
	}
	return addr, nil
}

// MintTo issues amount of mint into the associated account of recipient.
// The mint authority must be authorized and pays for a new account.
func (c BaseController) MintTo(ctx tokenswap.Context, db tokenswap.KVStore, mint, recipient tokenswap.Address, amount uint64) error {
	m, err := c.GetMint(db, mint)
	if err != nil {
		return err
	}
	if err := x.RequireAddress(ctx, c.auth, m.Authority); err != nil {
		return errors.Wrap(err, "mint authority")
	}
	return c.issue(db, mint, m, recipient, amount)
}

// issue increases the supply of mint and credits the new tokens to the
// associated account of recipient. No authorization is checked.
func (c BaseController) issue(db tokenswap.KVStore, mint tokenswap.Address, m *Mint, recipient tokenswap.Address, amount uint64) error {
	addr, err := c.EnsureAccount(db, m.Authority, recipient, mint)
	if err != nil {
		return err
	}
	acct, err := c.GetAccount(db, addr)
	if err != nil {
		return err
	}
	if m.Supply, err = add(m.Supply, amount); err != nil {
		return errors.Wrap(err, "supply")
	}
	if acct.Amount, err = add(acct.Amount, amount); err != nil {
		return err
	}
	if err := c.mints.Save(db, orm.NewSimpleObj(mint, m)); err != nil {
		return err
	}
	return c.accounts.Save(db, orm.NewSimpleObj(addr, acct))
}

func (c BaseController) CreateAccount(db tokenswap.KVStore, payer, owner, mint tokenswap.Address) (tokenswap.Address, error) {
	if _, err := c.GetMint(db, mint); err != nil {
		return nil, err
	}
	addr := AccountAddress(owner, mint)
	switch has, err := c.accounts.Has(db, addr); {
	case err != nil:
		return nil, err
	case has:
		return nil, errors.Wrapf(errors.ErrDuplicate, "token account %s", addr)
	}
	if err := c.rent.Allocate(db, payer, addr, AccountSize); err != nil {
		return nil, errors.Wrap(err, "token account")
	}
	acct := &Account{Owner: owner.Clone(), Mint: mint.Clone()}
	if err := c.accounts.Save(db, orm.NewSimpleObj(addr, acct)); err != nil {
		return nil, err
	}
	return addr, nil
}

func (c BaseController) EnsureAccount(db tokenswap.KVStore, payer, owner, mint tokenswap.Address) (tokenswap.Address, error) {
	addr := AccountAddress(owner, mint)
	has, err := c.accounts.Has(db, addr)
	if err != nil {
		return nil, err
	}
	if has {
		return addr, nil
	}
	return c.CreateAccount(db, payer, owner, mint)
}

func (c BaseController) TransferChecked(ctx tokenswap.Context, db tokenswap.KVStore, from, to, mint tokenswap.Address, amount uint64, decimals uint8) error {
	src, err := c.GetAccount(db, from)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	dst, err := c.GetAccount(db, to)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if !src.Mint.Equals(mint) || !dst.Mint.Equals(mint) {
		return errors.Wrapf(ErrAssetMismatch, "accounts do not hold mint %s", mint)
	}
	m, err := c.GetMint(db, mint)
	if err != nil {
		return err
	}
	if m.Decimals != decimals {
		return errors.Wrapf(ErrAssetMismatch, "mint has %d decimals, declared %d", m.Decimals, decimals)
	}
	if err := x.RequireAddress(ctx, c.auth, src.Owner); err != nil {
		return errors.Wrap(err, "source owner")
	}
	if src.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "holds %s, needs %s",
			FormatAmount(src.Amount, decimals), FormatAmount(amount, decimals))
	}
	if from.Equals(to) {
		return nil
	}
	if dst.Amount, err = add(dst.Amount, amount); err != nil {
		return err
	}
	src.Amount -= amount

	if err := c.accounts.Save(db, orm.NewSimpleObj(from, src)); err != nil {
		return err
	}
	return c.accounts.Save(db, orm.NewSimpleObj(to, dst))
}

func (c BaseController) CloseAccount(ctx tokenswap.Context, db tokenswap.KVStore, addr, dest tokenswap.Address) error {
	acct, err := c.GetAccount(db, addr)
	if err != nil {
		return err
	}
	if err := x.RequireAddress(ctx, c.auth, acct.Owner); err != nil {
		return errors.Wrap(err, "account owner")
	}
	if acct.Amount != 0 {
		return errors.Wrapf(errors.ErrState, "cannot close account holding %d", acct.Amount)
	}
	if err := c.accounts.Delete(db, addr); err != nil {
		return err
	}
	if _, err := c.rent.Release(db, addr, dest); err != nil {
		return errors.Wrap(err, "token account")
	}
	return nil
}

// Balance returns the amount held by the associated account of owner for
// mint, zero if the account does not exist.
func (c BaseController) Balance(db tokenswap.ReadOnlyKVStore, owner, mint tokenswap.Address) (uint64, error) {
	acct, err := c.GetAccount(db, AccountAddress(owner, mint))
	switch {
	case errors.ErrNotFound.Is(err):
		return 0, nil
	case err != nil:
		return 0, err
	}
	return acct.Amount, nil
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrap(errors.ErrOverflow, "amount")
	}
	return sum, nil
}
