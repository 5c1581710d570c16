package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/errors"
)

// SignCodeV1 prefixes every signed message of this version.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// VerifyTxSignatures verifies every signature of tx and returns the
// signer conditions in signature order. One bad signature rejects the tx.
func VerifyTxSignatures(db tokenswap.KVStore, tx SignedTx, chainID string) ([]tokenswap.Condition, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()
	signers := make([]tokenswap.Condition, 0, len(sigs))
	for i, sig := range sigs {
		cond, err := VerifySignature(db, sig, raw, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, cond)
	}
	return signers, nil
}

// VerifySignature checks sig over the tx bytes and moves the sequence of
// the signing key forward by one.
func VerifySignature(db tokenswap.KVStore, sig *StdSignature, txBytes []byte, chainID string) (tokenswap.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	msg, err := BuildSignBytes(txBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	b := NewBucket()
	obj, err := b.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	user := AsUser(obj)
	if !user.Pubkey.Verify(msg, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := b.Save(db, obj); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}

// BuildSignBytes returns the sha512 digest that a key signs:
//
//	SignCodeV1 | uint8 len(chainID) | chainID | big endian int64 seq | tx bytes
func BuildSignBytes(txBytes []byte, chainID string, seq int64) ([]byte, error) {
	switch {
	case seq < 0:
		return nil, errors.Wrapf(ErrInvalidSequence, "negative sequence %d", seq)
	case !tokenswap.IsValidChainID(chainID):
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}

	h := sha512.New()
	h.Write(SignCodeV1)
	h.Write([]byte{byte(len(chainID))})
	h.Write([]byte(chainID))
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(seq))
	h.Write(nonce[:])
	h.Write(txBytes)
	return h.Sum(nil), nil
}

// BuildSignBytesTx is BuildSignBytes over tx.GetSignBytes.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return BuildSignBytes(raw, chainID, seq)
}

// SignTx signs tx for the given chain and sequence.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	msg, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(msg)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{Pubkey: signer.PublicKey(), Signature: sig, Sequence: seq}, nil
}
