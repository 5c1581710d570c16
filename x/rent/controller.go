package rent

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/gconf"
	"github.com/iov-one/tokenswap/orm"
)

// Controller charges and refunds storage deposits.
type Controller interface {
	// Allocate charges payer the deposit for size bytes stored at addr.
	// ErrDuplicate is returned if addr is already allocated.
	Allocate(db tokenswap.KVStore, payer, addr tokenswap.Address, size int) error
	// Release drops the deposit of addr and credits it to dest. It
	// returns the refunded amount. ErrNotFound is returned if addr was
	// never allocated.
	Release(db tokenswap.KVStore, addr, dest tokenswap.Address) (uint64, error)
	// IsAllocated returns true if addr holds a deposit.
	IsAllocated(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (bool, error)
}

// BaseController is the store backed Controller.
type BaseController struct {
	wallets  orm.Bucket
	deposits orm.Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller over the wallet and deposit buckets.
func NewController() BaseController {
	return BaseController{
		wallets:  NewWalletBucket(),
		deposits: NewDepositBucket(),
	}
}

// LoadConfig returns the storage price stored at genesis.
func LoadConfig(db tokenswap.ReadOnlyKVStore) (*Config, error) {
	var c Config
	if err := gconf.Load(db, configPkg, &c); err != nil {
		return nil, errors.Wrap(err, "rent configuration")
	}
	return &c, nil
}

func (c BaseController) Allocate(db tokenswap.KVStore, payer, addr tokenswap.Address, size int) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "allocated address")
	}
	switch has, err := c.deposits.Has(db, addr); {
	case err != nil:
		return err
	case has:
		return errors.Wrapf(errors.ErrDuplicate, "%s already allocated", addr)
	}

	conf, err := LoadConfig(db)
	if err != nil {
		return err
	}
	amount, err := conf.Required(size)
	if err != nil {
		return err
	}
	if err := c.Debit(db, payer, amount); err != nil {
		return errors.Wrap(err, "storage deposit")
	}
	dep := &Deposit{Payer: payer.Clone(), Amount: amount}
	return c.deposits.Save(db, orm.NewSimpleObj(addr, dep))
}

func (c BaseController) Release(db tokenswap.KVStore, addr, dest tokenswap.Address) (uint64, error) {
	obj, err := c.deposits.Get(db, addr)
	if err != nil {
		return 0, err
	}
	if obj == nil {
		return 0, errors.Wrapf(errors.ErrNotFound, "deposit of %s", addr)
	}
	dep := obj.Value().(*Deposit)
	if err := c.deposits.Delete(db, addr); err != nil {
		return 0, err
	}
	if err := c.Credit(db, dest, dep.Amount); err != nil {
		return 0, err
	}
	return dep.Amount, nil
}

func (c BaseController) IsAllocated(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (bool, error) {
	return c.deposits.Has(db, addr)
}

// Balance returns the native balance of addr, zero for an unknown wallet.
func (c BaseController) Balance(db tokenswap.ReadOnlyKVStore, addr tokenswap.Address) (uint64, error) {
	obj, err := c.wallets.Get(db, addr)
	if err != nil || obj == nil {
		return 0, err
	}
	return obj.Value().(*Balance).Amount, nil
}

// Credit adds amount to the native balance of addr.
func (c BaseController) Credit(db tokenswap.KVStore, addr tokenswap.Address, amount uint64) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "wallet")
	}
	have, err := c.Balance(db, addr)
	if err != nil {
		return err
	}
	total, err := add(have, amount)
	if err != nil {
		return err
	}
	return c.wallets.Save(db, orm.NewSimpleObj(addr, &Balance{Amount: total}))
}

// Debit takes amount from the native balance of addr.
func (c BaseController) Debit(db tokenswap.KVStore, addr tokenswap.Address, amount uint64) error {
	have, err := c.Balance(db, addr)
	if err != nil {
		return err
	}
	if have < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "wallet %s holds %d, needs %d", addr, have, amount)
	}
	if amount == 0 {
		return nil
	}
	return c.wallets.Save(db, orm.NewSimpleObj(addr, &Balance{Amount: have - amount}))
}

// RegisterQuery exposes wallets as "/wallets" and deposits as "/deposits".
func RegisterQuery(qr tokenswap.QueryRouter) {
	NewWalletBucket().Register("wallets", qr)
	NewDepositBucket().Register("deposits", qr)
}
