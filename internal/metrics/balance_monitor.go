package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	balanceRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletflow",
		Subsystem: "balance_monitor",
		Name:      "refresh_total",
		Help:      "Count of balance refresh attempts.",
	}, []string{"wallet", "status"})

	balanceRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletflow",
		Subsystem: "balance_monitor",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of balance refresh attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"wallet", "status"})

	balanceRestartsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletflow",
		Subsystem: "balance_monitor",
		Name:      "restarts_total",
		Help:      "Count of silent monitor restarts after transient domain errors.",
	}, []string{"wallet"})
)

// BalanceMonitor tracks metrics for the balance polling loop.
type BalanceMonitor struct {
	wallet string
}

// NewBalanceMonitor constructs a BalanceMonitor metrics recorder.
func NewBalanceMonitor(wallet string) *BalanceMonitor {
	if wallet == "" {
		wallet = "unknown"
	}
	return &BalanceMonitor{wallet: wallet}
}

// ObserveRefresh records one balance refresh outcome and duration.
func (m BalanceMonitor) ObserveRefresh(err error, started time.Time) {
	status := statusLabel(err)
	balanceRefreshTotal.WithLabelValues(m.wallet, status).Inc()
	balanceRefreshDuration.WithLabelValues(m.wallet, status).
		Observe(time.Since(started).Seconds())
}

// ObserveRestart records a silent stop-then-restart of the monitor.
func (m BalanceMonitor) ObserveRestart() {
	balanceRestartsTotal.WithLabelValues(m.wallet).Inc()
}
