package app

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/x/escrow"
	"github.com/iov-one/tokenswap/x/sigs"
	"github.com/iov-one/tokenswap/x/token"
)

// messages lists every message the node accepts, by path.
var messages = map[string]func() tokenswap.Msg{
	(&token.CreateMintMsg{}).Path(): func() tokenswap.Msg { return &token.CreateMintMsg{} },
	(&token.MintToMsg{}).Path():     func() tokenswap.Msg { return &token.MintToMsg{} },
	(&token.TransferMsg{}).Path():   func() tokenswap.Msg { return &token.TransferMsg{} },
	(&escrow.MakeMsg{}).Path():      func() tokenswap.Msg { return &escrow.MakeMsg{} },
	(&escrow.TakeMsg{}).Path():      func() tokenswap.Msg { return &escrow.TakeMsg{} },
	(&escrow.CancelMsg{}).Path():    func() tokenswap.Msg { return &escrow.CancelMsg{} },
}

// Tx is the transaction of the node: one message together with the
// signatures authorizing it. It travels as an Envelope.
type Tx struct {
	Signatures []*sigs.StdSignature
	Msg        tokenswap.Msg
}

var _ tokenswap.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (tokenswap.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetMsg returns the single message of the transaction.
func (tx *Tx) GetMsg() (tokenswap.Msg, error) {
	return tx.Msg, nil
}

// GetSignatures implements sigs.SignedTx
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// the sign bytes must only come from the data itself,
	// not previous signatures
	env, err := tx.envelope(nil)
	if err != nil {
		return nil, err
	}
	return env.Marshal()
}

func (tx *Tx) Marshal() ([]byte, error) {
	env, err := tx.envelope(tx.Signatures)
	if err != nil {
		return nil, err
	}
	return env.Marshal()
}

func (tx *Tx) envelope(signatures []*sigs.StdSignature) (*Envelope, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "missing message")
	}
	payload, err := tx.Msg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "message")
	}
	return &Envelope{
		Signatures: signatures,
		Path:       tx.Msg.Path(),
		Payload:    payload,
	}, nil
}

func (tx *Tx) Unmarshal(raw []byte) error {
	var env Envelope
	if err := env.Unmarshal(raw); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	newMsg, ok := messages[env.Path]
	if !ok {
		return errors.Wrapf(errors.ErrMsg, "unknown message path %q", env.Path)
	}
	msg := newMsg()
	if err := msg.Unmarshal(env.Payload); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	tx.Signatures = env.Signatures
	tx.Msg = msg
	return nil
}
