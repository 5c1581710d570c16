package rent

import (
	"math/bits"

	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

const (
	// WalletBucket holds native balances.
	WalletBucket = "wallet"
	// DepositBucket holds one deposit per allocated address.
	DepositBucket = "deposit"
	// configPkg is the gconf key of the rent configuration.
	configPkg = "rent"
	// MaxStateSize is the largest state a single address may allocate.
	MaxStateSize = 10 * 1024
)

// Validate rejects a configuration that makes any allocation overflow.
func (c *Config) Validate() error {
	_, err := c.Required(MaxStateSize)
	return err
}

// Required returns the deposit for size bytes of state.
func (c *Config) Required(size int) (uint64, error) {
	if size < 0 || size > MaxStateSize {
		return 0, errors.Wrapf(errors.ErrInput, "state size %d", size)
	}
	hi, lo := bits.Mul64(c.PerByte, uint64(size))
	if hi != 0 {
		return 0, errors.Wrap(errors.ErrOverflow, "rent")
	}
	return add(lo, c.Base)
}

var _ orm.Model = (*Balance)(nil)

func (b *Balance) Validate() error {
	return nil
}

var _ orm.Model = (*Deposit)(nil)

func (d *Deposit) Validate() error {
	return errors.Wrap(d.Payer.Validate(), "payer")
}

// NewWalletBucket returns the bucket of native balances.
func NewWalletBucket() orm.Bucket {
	return orm.NewBucket(WalletBucket, orm.NewSimpleObj(nil, new(Balance)))
}

// NewDepositBucket returns the bucket of storage deposits.
func NewDepositBucket() orm.Bucket {
	return orm.NewBucket(DepositBucket, orm.NewSimpleObj(nil, new(Deposit)))
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrap(errors.ErrOverflow, "balance")
	}
	return sum, nil
}
