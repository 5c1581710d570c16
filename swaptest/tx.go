package swaptest

import (
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
)

// Tx carries one message and never touches the wire.
type Tx struct {
	Msg tokenswap.Msg
	// Err is returned by GetMsg.
	Err error
}

var _ tokenswap.Tx = (*Tx)(nil)

var errNoWireForm = errors.ErrHuman.New("test transaction has no wire form")

func (tx *Tx) GetMsg() (tokenswap.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Marshal() ([]byte, error) {
	return nil, errNoWireForm
}

func (tx *Tx) Unmarshal([]byte) error {
	return errNoWireForm
}

// Msg is routed by RoutePath. Its wire form is Serialized as is.
type Msg struct {
	RoutePath  string
	Serialized []byte
	// Err is returned by Validate, Marshal and Unmarshal.
	Err error
}

var _ tokenswap.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
