package token

import (
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/swaptest/assert"
	"github.com/iov-one/tokenswap/x/rent"
)

// router collects the handlers registered by RegisterRoutes.
type router map[string]tokenswap.Handler

func (r router) Handle(path string, h tokenswap.Handler) {
	r[path] = h
}

func TestHandlers(t *testing.T) {
	alice := swaptest.NewCondition()
	bob := swaptest.NewCondition()

	cases := map[string]struct {
		signer       tokenswap.Condition
		msg          tokenswap.Msg
		wantCheckErr *errors.Error
		wantErr      *errors.Error
		wantAlice    uint64
		wantBob      uint64
	}{
		"transfer creates the recipient account": {
			signer:    alice,
			msg:       &TransferMsg{Source: alice.Address(), Recipient: bob.Address(), Amount: 40, Decimals: 6},
			wantAlice: 60,
			wantBob:   40,
		},
		"transfer needs the source signature": {
			signer:       bob,
			msg:          &TransferMsg{Source: alice.Address(), Recipient: bob.Address(), Amount: 40, Decimals: 6},
			wantCheckErr: errors.ErrUnauthorized,
			wantErr:      errors.ErrUnauthorized,
			wantAlice:    100,
		},
		"transfer with wrong precision": {
			signer:    alice,
			msg:       &TransferMsg{Source: alice.Address(), Recipient: bob.Address(), Amount: 40, Decimals: 2},
			wantErr:   ErrAssetMismatch,
			wantAlice: 100,
		},
		"mint to by a stranger": {
			signer:    bob,
			msg:       &MintToMsg{Recipient: bob.Address(), Amount: 5},
			wantErr:   errors.ErrUnauthorized,
			wantAlice: 100,
		},
		"invalid message": {
			signer:       alice,
			msg:          &TransferMsg{Source: alice.Address(), Recipient: bob.Address(), Decimals: 6},
			wantCheckErr: errors.ErrAmount,
			wantErr:      errors.ErrAmount,
			wantAlice:    100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			f.fund(t, alice.Address(), 100)
			assert.Nil(t, rent.NewController().Credit(f.db, alice.Address(), 1000))

			switch m := tc.msg.(type) {
			case *TransferMsg:
				m.Mint = f.mint
			case *MintToMsg:
				m.Mint = f.mint
			}

			r := make(router)
			RegisterRoutes(r, f.auth, f.ctrl)
			h := r[tc.msg.Path()]
			tx := &swaptest.Tx{Msg: tc.msg}
			ctx := f.signed(tc.signer)

			cache := f.db.CacheWrap()
			if _, err := h.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()

			cache = f.db.CacheWrap()
			_, err := h.Deliver(ctx, cache, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if err == nil {
				assert.Nil(t, cache.Write())
			} else {
				cache.Discard()
			}

			assert.Equal(t, tc.wantAlice, f.balance(t, alice.Address()))
			assert.Equal(t, tc.wantBob, f.balance(t, bob.Address()))
		})
	}
}

func TestCreateMintHandler(t *testing.T) {
	f := newFixture(t)
	r := make(router)
	RegisterRoutes(r, f.auth, f.ctrl)

	msg := &CreateMintMsg{Authority: f.authority.Address(), Seed: 9, Decimals: 2}
	tx := &swaptest.Tx{Msg: msg}

	_, err := r[pathCreateMintMsg].Deliver(f.signed(swaptest.NewCondition()), f.db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	res, err := r[pathCreateMintMsg].Deliver(f.signed(f.authority), f.db, tx)
	assert.Nil(t, err)
	assert.Equal(t, []byte(MintAddress(f.authority.Address(), 9)), res.Data)

	m, err := f.ctrl.GetMint(f.db, res.Data)
	assert.Nil(t, err)
	assert.Equal(t, uint8(2), m.Decimals)

	_, err = r[pathCreateMintMsg].Deliver(f.signed(f.authority), f.db, tx)
	assert.IsErr(t, errors.ErrDuplicate, err)
}
