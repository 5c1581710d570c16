package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/crypto"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedTx carries a payload as its message and any number of signatures.
type signedTx struct {
	swaptest.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*signedTx)(nil)

func newSignedTx(payload []byte) *signedTx {
	return &signedTx{Tx: swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "test/payload", Serialized: payload}}}
}

func (tx *signedTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *signedTx) GetSignBytes() ([]byte, error) {
	return tx.Msg.Marshal()
}

func TestSignBytes(t *testing.T) {
	bz := []byte("foobar")
	tx := newSignedTx(bz)

	chainID := "test-sign-bytes"
	c1, err := BuildSignBytesTx(tx, chainID, 17)
	require.NoError(t, err)
	c1a, err := BuildSignBytes(bz, chainID, 17)
	require.NoError(t, err)
	assert.Equal(t, c1, c1a)
	assert.NotEqual(t, bz, c1)

	// sign bytes change on payload, chain id and sequence
	ct, err := BuildSignBytes([]byte("blast"), chainID, 17)
	require.NoError(t, err)
	assert.NotEqual(t, c1, ct)
	c2, err := BuildSignBytes(bz, chainID+"2", 17)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)
	c3, err := BuildSignBytes(bz, chainID, 18)
	require.NoError(t, err)
	assert.NotEqual(t, c1, c3)

	_, err = BuildSignBytes(bz, chainID, -1)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = BuildSignBytes(bz, "no", 1)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	kv := store.MemStore()
	priv := crypto.GenPrivKeyEd25519()
	cond := priv.PublicKey().Condition()

	chainID := "swap-music-2345"
	bz := []byte("my special valentine")
	tx := newSignedTx(bz)

	sig0, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	// signing is deterministic
	again, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	assert.Equal(t, sig0, again)

	// a sequence ahead of the store is rejected
	_, err = VerifySignature(kv, sig1, bz, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	_, err = VerifySignature(kv, new(StdSignature), bz, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// wrong chain id does not verify
	_, err = VerifySignature(kv, sig0, bz, "other-chain")
	assert.True(t, errors.ErrUnauthorized.Is(err))

	got, err := VerifySignature(kv, sig0, bz, chainID)
	require.NoError(t, err)
	assert.Equal(t, cond, got)

	// replay fails, the next one passes
	_, err = VerifySignature(kv, sig0, bz, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = VerifySignature(kv, sig1, bz, chainID)
	require.NoError(t, err)

	n, err := NextNonce(kv, priv.PublicKey().Address())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestVerifyTxSignaturesUnsigned(t *testing.T) {
	kv := store.MemStore()
	tx := newSignedTx([]byte("nobody signed this"))

	signers, err := VerifyTxSignatures(kv, tx, "swap-music-2345")
	require.NoError(t, err)
	assert.NotNil(t, signers)
	assert.Empty(t, signers)
}

func TestUserPersistence(t *testing.T) {
	kv := store.MemStore()
	bucket := NewBucket()
	pub := crypto.GenPrivKeyEd25519().PublicKey()

	obj, err := bucket.GetOrCreate(kv, pub)
	require.NoError(t, err)
	user := AsUser(obj)
	assert.Error(t, user.CheckAndIncrementSequence(5))
	require.NoError(t, user.CheckAndIncrementSequence(0))
	require.NoError(t, bucket.Save(kv, obj))

	obj, err = bucket.Get(kv, pub.Address())
	require.NoError(t, err)
	loaded := AsUser(obj)
	assert.Equal(t, int64(1), loaded.Sequence)
	assert.Equal(t, pub.Ed25519, loaded.Pubkey.Ed25519)

	bad := &UserData{Sequence: 3}
	assert.True(t, ErrInvalidSequence.Is(bad.Validate()))
}

func TestSignatureSerialization(t *testing.T) {
	priv := crypto.GenPrivKeyEd25519()
	sig, err := SignTx(priv, newSignedTx([]byte("x")), "serial-chain", 42)
	require.NoError(t, err)

	raw, err := sig.Marshal()
	require.NoError(t, err)
	var got StdSignature
	require.NoError(t, got.Unmarshal(raw))
	assert.Equal(t, *sig, got)
}

// signerHandler stores the seen signers on each call
type signerHandler struct {
	Signers []tokenswap.Condition
}

func (s *signerHandler) Check(ctx tokenswap.Context, store tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &tokenswap.CheckResult{}, nil
}

func (s *signerHandler) Deliver(ctx tokenswap.Context, store tokenswap.KVStore, tx tokenswap.Tx) (*tokenswap.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &tokenswap.DeliverResult{}, nil
}

func TestDecorator(t *testing.T) {
	kv := store.MemStore()
	checkKv := kv.CacheWrap()
	signers := new(signerHandler)
	d := NewDecorator()
	chainID := "deco-rate"
	ctx := tokenswap.WithChainID(context.Background(), chainID)

	priv := crypto.GenPrivKeyEd25519()
	conds := []tokenswap.Condition{priv.PublicKey().Condition()}

	tx := newSignedTx([]byte("art"))
	sig, err := SignTx(priv, tx, chainID, 0)
	require.NoError(t, err)
	sig1, err := SignTx(priv, tx, chainID, 1)
	require.NoError(t, err)

	deliver := func(dec tokenswap.Decorator, my tokenswap.Tx) error {
		_, err := dec.Deliver(ctx, kv, my, signers)
		return err
	}
	check := func(dec tokenswap.Decorator, my tokenswap.Tx) error {
		_, err := dec.Check(ctx, checkKv, my, signers)
		return err
	}

	for i, fn := range []func(tokenswap.Decorator, tokenswap.Tx) error{check, deliver} {
		tx.Signatures = nil
		assert.Error(t, fn(d, tx), "%d", i)

		tx.Signatures = []*StdSignature{sig}
		assert.NoError(t, fn(d, tx), "%d", i)
		assert.Equal(t, conds, signers.Signers)

		// replay
		assert.Error(t, fn(d, tx), "%d", i)

		ad := d.AllowMissingSigs()
		tx.Signatures = nil
		assert.NoError(t, fn(ad, tx), "%d", i)
		assert.Equal(t, []tokenswap.Condition{}, signers.Signers)

		tx.Signatures = []*StdSignature{sig1}
		assert.NoError(t, fn(ad, tx), "%d", i)
		assert.Equal(t, conds, signers.Signers)
	}

	// a transaction that cannot carry signatures is rejected
	plain := &swaptest.Tx{Msg: &swaptest.Msg{RoutePath: "test/payload"}}
	assert.True(t, errors.ErrUnauthorized.Is(check(d, plain)))
	assert.NoError(t, check(d.AllowMissingSigs(), plain))
}

func TestAuthenticateHasAddress(t *testing.T) {
	a, b := swaptest.NewCondition(), swaptest.NewCondition()
	ctx := withSigners(context.Background(), []tokenswap.Condition{a})

	assert.True(t, Authenticate{}.HasAddress(ctx, a.Address()))
	assert.False(t, Authenticate{}.HasAddress(ctx, b.Address()))
	assert.False(t, Authenticate{}.HasAddress(context.Background(), a.Address()))
}
