package utils

import (
	"time"

	"github.com/iov-one/tokenswap"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging logs every transaction with its path and how long it took.
// Failures are errors, deliveries are info and checks are debug.
type Logging struct{}

var _ tokenswap.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx, next tokenswap.Checker) (*tokenswap.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logger.Error("check failed", "err", err)
	default:
		logger.Debug("checked", "log", res.Log)
	}
	return res, err
}

func (Logging) Deliver(ctx tokenswap.Context, db tokenswap.KVStore, tx tokenswap.Tx, next tokenswap.Deliverer) (*tokenswap.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logger.Error("deliver failed", "err", err)
	default:
		logger.Info("delivered", "log", res.Log, "tags", len(res.Tags))
	}
	return res, err
}

func txLogger(ctx tokenswap.Context, tx tokenswap.Tx, start time.Time) log.Logger {
	return tokenswap.GetLogger(ctx).With(
		"path", tokenswap.GetPath(tx),
		"took", time.Since(start).String(),
	)
}
