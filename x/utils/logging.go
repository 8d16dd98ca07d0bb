package utils

import (
	"time"

	"github.com/zeroid/zid"
)

// Logging is a decorator to log messages as they pass through.
type Logging struct{}

var _ zid.Decorator = Logging{}

// NewLogging creates a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug.
func (Logging) Check(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Checker) (*zid.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info.
func (Logging) Deliver(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Deliverer) (*zid.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, false)
	return res, err
}

func logDuration(ctx zid.Context, start time.Time, msg string, err error, lowPrio bool) {
	logger := zid.GetLogger(ctx).With("duration", time.Since(start)/time.Microsecond)

	// An entry is emitted even for an empty message, as the key values
	// carry the information.
	switch {
	case err != nil:
		logger.With("err", err).Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
