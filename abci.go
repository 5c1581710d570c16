package tokenswap

import (
	"github.com/iov-one/tokenswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// DeliverResult is the outcome of a successful DeliverTx. Failures are
// reported as errors, never as a result.
type DeliverResult struct {
	// Data is machine readable, for example the address of a new entity.
	Data []byte
	Log  string
	// Tags let tendermint index the transaction.
	Tags []common.KVPair
}

func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{Data: d.Data, Log: d.Log, Tags: d.Tags}
}

// CheckResult is the outcome of a successful CheckTx.
type CheckResult struct {
	Data []byte
	Log  string
}

func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{Data: c.Data, Log: c.Log}
}

// Tag builds a DeliverResult tag.
func Tag(key string, value []byte) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: value}
}

// DeliverOrError turns the return values of Deliverer.Deliver into a
// response. A nil result with a nil error is an empty success.
func DeliverOrError(res *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	switch {
	case err != nil:
		return DeliverTxError(err, debug)
	case res == nil:
		return abci.ResponseDeliverTx{}
	}
	return res.ToABCI()
}

// CheckOrError is DeliverOrError for CheckTx.
func CheckOrError(res *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	switch {
	case err != nil:
		return CheckTxError(err, debug)
	case res == nil:
		return abci.ResponseCheckTx{}
	}
	return res.ToABCI()
}

// DeliverTxError reports err to the client. Without debug, only errors
// with a registered code keep their message.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := errorInfo("deliver", err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log}
}

func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := errorInfo("check", err, debug)
	return abci.ResponseCheckTx{Code: code, Log: log}
}

func errorInfo(phase string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, "cannot " + phase + " tx: " + log
}
