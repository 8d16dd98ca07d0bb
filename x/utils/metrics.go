package utils

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

// Metrics is a decorator that counts processed transactions and observes
// their processing time, labeled by call, message path and result code.
type Metrics struct {
	txs      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ zid.Decorator = Metrics{}

// NewMetrics creates a Metrics decorator and registers its collectors with
// the given registerer. It panics if the collectors are already registered.
func NewMetrics(reg prometheus.Registerer) Metrics {
	m := Metrics{
		txs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zid",
			Name:      "transactions_total",
			Help:      "Number of processed transactions.",
		}, []string{"call", "path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "zid",
			Name:      "transaction_duration_seconds",
			Help:      "Time spent processing a transaction.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"call", "path"}),
	}
	reg.MustRegister(m.txs, m.duration)
	return m
}

// Check measures the check call.
func (m Metrics) Check(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Checker) (*zid.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	m.observe("check", zid.GetPath(tx), start, err)
	return res, err
}

// Deliver measures the deliver call.
func (m Metrics) Deliver(ctx zid.Context, store zid.KVStore, tx zid.Tx, next zid.Deliverer) (*zid.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	m.observe("deliver", zid.GetPath(tx), start, err)
	return res, err
}

func (m Metrics) observe(call, path string, start time.Time, err error) {
	code, _ := errors.ABCIInfo(err, false)
	m.txs.WithLabelValues(call, path, strconv.FormatUint(uint64(code), 10)).Inc()
	m.duration.WithLabelValues(call, path).Observe(time.Since(start).Seconds())
}
