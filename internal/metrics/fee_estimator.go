package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feeEstimateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletflow",
		Subsystem: "fee_estimator",
		Name:      "estimate_total",
		Help:      "Count of fee estimation requests.",
	}, []string{"wallet", "status"})

	feeEstimateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletflow",
		Subsystem: "fee_estimator",
		Name:      "estimate_duration_seconds",
		Help:      "Duration of fee estimation requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"wallet", "status"})

	feeStaleDropsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletflow",
		Subsystem: "fee_estimator",
		Name:      "stale_drops_total",
		Help:      "Count of fee estimate responses dropped because a newer request superseded them.",
	}, []string{"wallet"})
)

// FeeEstimator tracks metrics for fee estimation.
type FeeEstimator struct {
	wallet string
}

// NewFeeEstimator constructs a FeeEstimator metrics recorder.
func NewFeeEstimator(wallet string) *FeeEstimator {
	if wallet == "" {
		wallet = "unknown"
	}
	return &FeeEstimator{wallet: wallet}
}

// ObserveEstimate records one fee estimation outcome and duration.
func (m FeeEstimator) ObserveEstimate(err error, started time.Time) {
	status := statusLabel(err)
	feeEstimateTotal.WithLabelValues(m.wallet, status).Inc()
	feeEstimateDuration.WithLabelValues(m.wallet, status).
		Observe(time.Since(started).Seconds())
}

// ObserveStaleDrop records a superseded estimate response being discarded.
func (m FeeEstimator) ObserveStaleDrop() {
	feeStaleDropsTotal.WithLabelValues(m.wallet).Inc()
}
