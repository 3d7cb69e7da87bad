// Package metrics exposes prometheus instrumentation for the deposit workflow.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walletAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletflow",
		Subsystem: "wallet_api",
		Name:      "calls_total",
		Help:      "Count of wallet API calls.",
	}, []string{"wallet", "operation", "status"})

	walletAPICallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletflow",
		Subsystem: "wallet_api",
		Name:      "call_duration_seconds",
		Help:      "Duration of wallet API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"wallet", "operation", "status"})
)

// WalletAPI tracks metrics for wallet API calls.
type WalletAPI struct {
	wallet string
}

// NewWalletAPI constructs a WalletAPI metrics recorder.
func NewWalletAPI(wallet string) *WalletAPI {
	if wallet == "" {
		wallet = "unknown"
	}
	return &WalletAPI{wallet: wallet}
}

// Observe records one wallet API call outcome and duration.
func (m WalletAPI) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	walletAPICallsTotal.WithLabelValues(m.wallet, operation, status).Inc()
	walletAPICallDuration.WithLabelValues(m.wallet, operation, status).
		Observe(time.Since(started).Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
