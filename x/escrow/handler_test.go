package escrow

import (
	"testing"

	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest"
	"github.com/iov-one/tokenswap/swaptest/assert"
	"github.com/iov-one/tokenswap/x/token"
)

const (
	recordDeposit  = 10 + RecordSize
	accountDeposit = 10 + token.AccountSize
)

func TestSwap(t *testing.T) {
	f := newFixture(t)
	maker, taker := f.maker.Address(), f.taker.Address()

	res, err := f.deliver(f.db, f.maker, f.makeMsg(7, 1000, 500))
	assert.Nil(t, err)
	addr := tokenswap.Address(res.Data)
	want, _, err := RecordAddress(maker, 7)
	assert.Nil(t, err)
	assert.Equal(t, want, addr)
	assert.Equal(t, 1, len(res.Tags))
	assert.Equal(t, addr.String(), string(res.Tags[0].Value))

	custody, err := f.tokens.GetAccount(f.db, custodyAddress(addr, f.mintA))
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000), custody.Amount)
	assert.Equal(t, []byte(addr), []byte(custody.Owner))
	assert.Equal(t, uint64(0), f.balance(t, maker, f.mintA))
	assert.Equal(t, uint64(wallet-recordDeposit-accountDeposit), f.native(t, maker))

	res, err = f.deliver(f.db, f.taker, f.takeMsg(addr))
	assert.Nil(t, err)
	assert.Equal(t, addr.String(), string(res.Tags[0].Value))

	assert.Equal(t, uint64(1000), f.balance(t, taker, f.mintA))
	assert.Equal(t, uint64(0), f.balance(t, taker, f.mintB))
	assert.Equal(t, uint64(500), f.balance(t, maker, f.mintB))
	assert.Equal(t, uint64(0), f.balance(t, maker, f.mintA))

	assert.Equal(t, false, f.exists(t, addr))
	assert.Equal(t, false, f.exists(t, custodyAddress(addr, f.mintA)))
	// both deposits are refunded to the maker, the taker pays for the
	// accounts it receives into
	assert.Equal(t, uint64(wallet), f.native(t, maker))
	assert.Equal(t, uint64(wallet-2*accountDeposit), f.native(t, taker))
}

func TestTransferToOpenRecord(t *testing.T) {
	f := newFixture(t)
	addr := f.open(t, 3, 1000, 500)
	f.fund(f.taker.Address(), f.mintA, 10)

	donate := &token.TransferMsg{
		Mint:      f.mintA,
		Source:    f.taker.Address(),
		Recipient: addr,
		Amount:    10,
		Decimals:  decimalsA,
	}
	assert.IsErr(t, errors.ErrState, f.check(f.taker, donate))
	_, err := f.deliver(f.db, f.taker, donate)
	assert.IsErr(t, errors.ErrState, err)

	assert.Equal(t, uint64(1000), f.balance(t, addr, f.mintA))
	assert.Equal(t, uint64(10), f.balance(t, f.taker.Address(), f.mintA))

	// plain transfers between wallets pass the guard
	donate.Recipient = f.maker.Address()
	_, err = f.deliver(f.db, f.taker, donate)
	assert.Nil(t, err)
	assert.Equal(t, uint64(10), f.balance(t, f.maker.Address(), f.mintA))
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	maker := f.maker.Address()

	addr := f.open(t, 3, 200, 50)
	assert.Equal(t, uint64(800), f.balance(t, maker, f.mintA))

	_, err := f.deliver(f.db, f.taker, &CancelMsg{Escrow: addr})
	assert.IsErr(t, errors.ErrUnauthorized, err)
	assert.Equal(t, true, f.exists(t, addr))

	_, err = f.deliver(f.db, f.maker, &CancelMsg{Escrow: addr})
	assert.Nil(t, err)
	assert.Equal(t, uint64(1000), f.balance(t, maker, f.mintA))
	assert.Equal(t, false, f.exists(t, addr))
	assert.Equal(t, false, f.exists(t, custodyAddress(addr, f.mintA)))
	assert.Equal(t, uint64(wallet), f.native(t, maker))

	// the seed is free again
	reopened := f.open(t, 3, 200, 50)
	assert.Equal(t, []byte(addr), []byte(reopened))
}

func TestTakeAndCancelAreExclusive(t *testing.T) {
	cases := map[string]struct {
		first, second func(f *fixture, addr tokenswap.Address) error
	}{
		"take then cancel": {
			first:  takeOffer,
			second: cancelOffer,
		},
		"cancel then take": {
			first:  cancelOffer,
			second: takeOffer,
		},
		"take twice": {
			first:  takeOffer,
			second: takeOffer,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			addr := f.open(t, 1, 100, 10)
			assert.Nil(t, tc.first(f, addr))
			assert.IsErr(t, errors.ErrNotFound, tc.second(f, addr))

			// exactly one of them moved the deposit
			total := f.balance(t, f.maker.Address(), f.mintA) + f.balance(t, f.taker.Address(), f.mintA)
			assert.Equal(t, uint64(1000), total)
		})
	}
}

func takeOffer(f *fixture, addr tokenswap.Address) error {
	_, err := f.deliver(f.db, f.taker, f.takeMsg(addr))
	return err
}

func cancelOffer(f *fixture, addr tokenswap.Address) error {
	_, err := f.deliver(f.db, f.maker, &CancelMsg{Escrow: addr})
	return err
}

func TestMakeRejected(t *testing.T) {
	cases := map[string]struct {
		signer  func(f *fixture) tokenswap.Condition
		prepare func(t testing.TB, f *fixture)
		msg     func(f *fixture) *MakeMsg
		wantErr *errors.Error
	}{
		"duplicate offer": {
			prepare: func(t testing.TB, f *fixture) { f.open(t, 7, 10, 10) },
			msg:     func(f *fixture) *MakeMsg { return f.makeMsg(7, 10, 10) },
			wantErr: errors.ErrDuplicate,
		},
		"custody created ahead of time": {
			prepare: func(t testing.TB, f *fixture) {
				addr, _, err := RecordAddress(f.maker.Address(), 7)
				assert.Nil(t, err)
				_, err = f.tokens.CreateAccount(f.db, f.taker.Address(), addr, f.mintA)
				assert.Nil(t, err)
			},
			msg:     func(f *fixture) *MakeMsg { return f.makeMsg(7, 10, 10) },
			wantErr: errors.ErrDuplicate,
		},
		"declared precision differs": {
			msg: func(f *fixture) *MakeMsg {
				m := f.makeMsg(7, 10, 10)
				m.DecimalsA = 2
				return m
			},
			wantErr: token.ErrAssetMismatch,
		},
		"unknown asset b": {
			msg: func(f *fixture) *MakeMsg {
				m := f.makeMsg(7, 10, 10)
				m.AssetB = swaptest.NewCondition().Address()
				return m
			},
			wantErr: errors.ErrNotFound,
		},
		"deposit over the balance": {
			msg:     func(f *fixture) *MakeMsg { return f.makeMsg(7, 1001, 10) },
			wantErr: errors.ErrInsufficientAmount,
		},
		"not signed by the maker": {
			signer:  func(f *fixture) tokenswap.Condition { return f.taker },
			msg:     func(f *fixture) *MakeMsg { return f.makeMsg(7, 10, 10) },
			wantErr: errors.ErrUnauthorized,
		},
		"zero deposit": {
			msg:     func(f *fixture) *MakeMsg { return f.makeMsg(7, 0, 10) },
			wantErr: errors.ErrAmount,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			if tc.prepare != nil {
				tc.prepare(t, f)
			}
			signer := f.maker
			if tc.signer != nil {
				signer = tc.signer(f)
			}
			wantBalance := f.balance(t, f.maker.Address(), f.mintA)
			wantNative := f.native(t, f.maker.Address())

			_, err := f.deliver(f.db, signer, tc.msg(f))
			assert.IsErr(t, tc.wantErr, err)

			assert.Equal(t, wantBalance, f.balance(t, f.maker.Address(), f.mintA))
			assert.Equal(t, wantNative, f.native(t, f.maker.Address()))
		})
	}
}

func TestTakeRejected(t *testing.T) {
	cases := map[string]struct {
		msg     func(f *fixture, addr tokenswap.Address) *TakeMsg
		signer  func(f *fixture) tokenswap.Condition
		wantErr *errors.Error
	}{
		"wrong maker": {
			msg: func(f *fixture, addr tokenswap.Address) *TakeMsg {
				m := f.takeMsg(addr)
				m.Maker = f.taker.Address()
				return m
			},
			wantErr: ErrRecordMismatch,
		},
		"swapped assets": {
			msg: func(f *fixture, addr tokenswap.Address) *TakeMsg {
				m := f.takeMsg(addr)
				m.AssetA, m.AssetB = m.AssetB, m.AssetA
				return m
			},
			wantErr: ErrRecordMismatch,
		},
		"wrong precision of asset a": {
			msg: func(f *fixture, addr tokenswap.Address) *TakeMsg {
				m := f.takeMsg(addr)
				m.DecimalsA = decimalsB
				return m
			},
			wantErr: token.ErrAssetMismatch,
		},
		"wrong precision of asset b": {
			msg: func(f *fixture, addr tokenswap.Address) *TakeMsg {
				m := f.takeMsg(addr)
				m.DecimalsB = decimalsA
				return m
			},
			wantErr: token.ErrAssetMismatch,
		},
		"unknown record": {
			msg: func(f *fixture, addr tokenswap.Address) *TakeMsg {
				return f.takeMsg(swaptest.NewCondition().Address())
			},
			wantErr: errors.ErrNotFound,
		},
		"taker holds too little of asset b": {
			msg: func(f *fixture, addr tokenswap.Address) *TakeMsg {
				return f.takeMsg(addr)
			},
			signer: func(f *fixture) tokenswap.Condition {
				poor := swaptest.NewCondition()
				f.fund(poor.Address(), f.mintB, 499)
				return poor
			},
			wantErr: errors.ErrInsufficientAmount,
		},
		"taker does not sign": {
			msg: func(f *fixture, addr tokenswap.Address) *TakeMsg {
				m := f.takeMsg(addr)
				m.Taker = swaptest.NewCondition().Address()
				return m
			},
			wantErr: errors.ErrUnauthorized,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			addr := f.open(t, 7, 1000, 500)
			signer := f.taker
			if tc.signer != nil {
				signer = tc.signer(f)
				assert.Nil(t, f.rent.Credit(f.db, signer.Address(), wallet))
			}

			_, err := f.deliver(f.db, signer, tc.msg(f, addr))
			assert.IsErr(t, tc.wantErr, err)

			assert.Equal(t, true, f.exists(t, addr))
			custody, err := f.tokens.GetAccount(f.db, custodyAddress(addr, f.mintA))
			assert.Nil(t, err)
			assert.Equal(t, uint64(1000), custody.Amount)
			assert.Equal(t, uint64(500), f.balance(t, f.taker.Address(), f.mintB))
			assert.Equal(t, uint64(0), f.balance(t, f.maker.Address(), f.mintB))
		})
	}
}

func TestCheckDoesNotWrite(t *testing.T) {
	f := newFixture(t)
	addr := f.open(t, 7, 1000, 500)

	rec := store.NewRecordingStore(f.db)
	f.db = rec
	assert.Nil(t, f.check(f.maker, f.makeMsg(8, 10, 10)))
	assert.Nil(t, f.check(f.taker, f.takeMsg(addr)))
	assert.Nil(t, f.check(f.maker, &CancelMsg{Escrow: addr}))
	assert.IsErr(t, errors.ErrDuplicate, f.check(f.maker, f.makeMsg(7, 10, 10)))
	assert.IsErr(t, errors.ErrUnauthorized, f.check(f.taker, &CancelMsg{Escrow: addr}))
	assert.Equal(t, 0, len(rec.KVPairs()))
}

// A failure at any write of a transaction leaves the store untouched.
func TestAtomicity(t *testing.T) {
	ops := map[string]struct {
		prepare func(t testing.TB, f *fixture) tokenswap.Address
		run     func(f *fixture, db tokenswap.KVStore, addr tokenswap.Address) error
	}{
		"make": {
			prepare: func(t testing.TB, f *fixture) tokenswap.Address { return nil },
			run: func(f *fixture, db tokenswap.KVStore, _ tokenswap.Address) error {
				_, err := f.deliver(db, f.maker, f.makeMsg(7, 1000, 500))
				return err
			},
		},
		"take": {
			prepare: func(t testing.TB, f *fixture) tokenswap.Address { return f.open(t, 7, 1000, 500) },
			run: func(f *fixture, db tokenswap.KVStore, addr tokenswap.Address) error {
				_, err := f.deliver(db, f.taker, f.takeMsg(addr))
				return err
			},
		},
		"cancel": {
			prepare: func(t testing.TB, f *fixture) tokenswap.Address { return f.open(t, 7, 1000, 500) },
			run: func(f *fixture, db tokenswap.KVStore, addr tokenswap.Address) error {
				_, err := f.deliver(db, f.maker, &CancelMsg{Escrow: addr})
				return err
			},
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			addr := op.prepare(t, f)
			probe := swaptest.NewFailingStore(f.db.CacheWrap(), 0)
			assert.Nil(t, op.run(f, probe, addr))
			writes := probe.Writes()
			if writes == 0 {
				t.Fatal("operation did not write")
			}

			for failAt := 1; failAt <= writes; failAt++ {
				f := newFixture(t)
				addr := op.prepare(t, f)
				rec := store.NewRecordingStore(f.db)
				db := swaptest.NewFailingStore(rec, failAt)
				if err := op.run(f, db, addr); !errors.ErrDatabase.Is(err) {
					t.Fatalf("write %d: want injected failure, got %+v", failAt, err)
				}
				if n := len(rec.KVPairs()); n != 0 {
					t.Fatalf("write %d: %d keys changed", failAt, n)
				}
			}
		})
	}
}

func TestQueries(t *testing.T) {
	f := newFixture(t)
	first := f.open(t, 1, 100, 10)
	second := f.open(t, 2, 100, 10)

	qr := tokenswap.NewQueryRouter()
	RegisterQuery(qr)

	res, err := qr.Handler("/escrows").Query(f.db, first)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	var rec Escrow
	assert.Nil(t, rec.Unmarshal(res[0].Value))
	assert.Equal(t, uint64(1), rec.Seed)

	res, err = qr.Handler("/escrows/maker").Query(f.db, f.maker.Address())
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res))

	_, err = f.deliver(f.db, f.taker, f.takeMsg(second))
	assert.Nil(t, err)
	res, err = qr.Handler("/escrows/maker").Query(f.db, f.maker.Address())
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, NewBucket().DBKey(first), res[0].Key)
}
