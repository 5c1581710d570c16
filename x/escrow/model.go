package escrow

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/orm"
)

const (
	// RecordSize is the length of a serialized record, which is also the
	// storage a record is charged for.
	RecordSize = discriminatorSize + 1 + 8 + 8 + 3*tokenswap.AddressLength

	discriminatorSize = 8
	bucketName        = "escrow"
)

var discriminator = recordDiscriminator()

func recordDiscriminator() []byte {
	h := sha256.Sum256([]byte("account:Escrow"))
	return h[:discriminatorSize]
}

// Escrow is an open offer. It is stored under the record address derived
// from Maker and Seed.
type Escrow struct {
	// Bump is the canonical bump of the record address.
	Bump uint8
	Seed uint64
	// ReceiveAmount of AssetB the maker wants for the deposit.
	ReceiveAmount uint64
	Maker         tokenswap.Address
	AssetA        tokenswap.Address
	AssetB        tokenswap.Address
}

var _ orm.Model = (*Escrow)(nil)

// Condition returns the condition owning the custody of this record.
func (e *Escrow) Condition() tokenswap.Condition {
	return RecordCondition(e.Maker, e.Seed, e.Bump)
}

// Address returns the record address.
func (e *Escrow) Address() tokenswap.Address {
	return e.Condition().Address()
}

// Custody returns the account holding the deposit.
func (e *Escrow) Custody() tokenswap.Address {
	return custodyAddress(e.Address(), e.AssetA)
}

func (e *Escrow) Validate() error {
	if err := e.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := e.AssetA.Validate(); err != nil {
		return errors.Wrap(err, "asset a")
	}
	if err := e.AssetB.Validate(); err != nil {
		return errors.Wrap(err, "asset b")
	}
	if e.ReceiveAmount == 0 {
		return errors.Wrap(errors.ErrModel, "receive amount must be positive")
	}
	return nil
}

// Marshal writes the fixed width layout
//
//   discriminator[8] | bump | seed | receive_amount | maker | asset_a | asset_b
//
// with integers in little endian.
func (e *Escrow) Marshal() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, 0, RecordSize)
	out = append(out, discriminator...)
	out = append(out, e.Bump)
	out = binary.LittleEndian.AppendUint64(out, e.Seed)
	out = binary.LittleEndian.AppendUint64(out, e.ReceiveAmount)
	out = append(out, e.Maker...)
	out = append(out, e.AssetA...)
	out = append(out, e.AssetB...)
	return out, nil
}

// Unmarshal is the inverse of Marshal. Data of another length or with
// another discriminator is rejected.
func (e *Escrow) Unmarshal(raw []byte) error {
	if len(raw) != RecordSize {
		return errors.Wrapf(errors.ErrModel, "record of %d bytes", len(raw))
	}
	if !bytes.Equal(raw[:discriminatorSize], discriminator) {
		return errors.Wrap(errors.ErrModel, "not an escrow record")
	}
	raw = raw[discriminatorSize:]
	e.Bump = raw[0]
	e.Seed = binary.LittleEndian.Uint64(raw[1:9])
	e.ReceiveAmount = binary.LittleEndian.Uint64(raw[9:17])
	raw = raw[17:]
	e.Maker = takeAddress(&raw)
	e.AssetA = takeAddress(&raw)
	e.AssetB = takeAddress(&raw)
	return nil
}

func takeAddress(raw *[]byte) tokenswap.Address {
	addr := make(tokenswap.Address, tokenswap.AddressLength)
	copy(addr, *raw)
	*raw = (*raw)[tokenswap.AddressLength:]
	return addr
}

// NewBucket returns the bucket of open records, indexed by maker.
func NewBucket() orm.Bucket {
	return orm.NewBucket(bucketName, orm.NewSimpleObj(nil, new(Escrow))).
		WithIndex("maker", makerIndexer, false)
}

func makerIndexer(obj orm.Object) ([]byte, error) {
	e, ok := obj.Value().(*Escrow)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return e.Maker, nil
}

// RegisterQuery exposes "/escrows" and "/escrows/maker".
func RegisterQuery(qr tokenswap.QueryRouter) {
	NewBucket().Register("escrows", qr)
}
