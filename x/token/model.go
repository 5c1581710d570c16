package token

import (
	"encoding/binary"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

const (
	// MintSize is the storage a mint is charged for.
	MintSize = 82
	// AccountSize is the storage an account is charged for.
	AccountSize = 165
	// MaxDecimals is the greatest supported precision.
	MaxDecimals = 18

	mintBucketName    = "mint"
	accountBucketName = "token"
)

// MintAddress returns the address of the mint created by authority with
// given seed.
func MintAddress(authority tokenswap.Address, seed uint64) tokenswap.Address {
	return tokenswap.NewCondition("token", "mint", append(authority.Clone(), encodeSeed(seed)...)).Address()
}

// AccountAddress returns the associated account address of owner for mint.
func AccountAddress(owner, mint tokenswap.Address) tokenswap.Address {
	data := make([]byte, 0, len(owner)+len(mint))
	data = append(data, owner...)
	data = append(data, mint...)
	return tokenswap.NewCondition("token", "assoc", data).Address()
}

func encodeSeed(seed uint64) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, seed)
	return out
}

var _ orm.Model = (*Mint)(nil)

func (m *Mint) Validate() error {
	if m.Decimals > MaxDecimals {
		return errors.Wrapf(errors.ErrModel, "decimals %d", m.Decimals)
	}
	return errors.Wrap(m.Authority.Validate(), "authority")
}

var _ orm.Model = (*Account)(nil)

func (a *Account) Validate() error {
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return errors.Wrap(a.Mint.Validate(), "mint")
}

// NewMintBucket returns the bucket of mints.
func NewMintBucket() orm.Bucket {
	return orm.NewBucket(mintBucketName, orm.NewSimpleObj(nil, new(Mint)))
}

// NewAccountBucket returns the bucket of accounts, indexed by owner.
func NewAccountBucket() orm.Bucket {
	return orm.NewBucket(accountBucketName, orm.NewSimpleObj(nil, new(Account))).
		WithIndex("owner", ownerIndexer, false)
}

func ownerIndexer(obj orm.Object) ([]byte, error) {
	acct, ok := obj.Value().(*Account)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return acct.Owner, nil
}

// RegisterQuery exposes "/mints", "/tokens" and "/tokens/owner".
func RegisterQuery(qr tokenswap.QueryRouter) {
	NewMintBucket().Register("mints", qr)
	NewAccountBucket().Register("tokens", qr)
}
