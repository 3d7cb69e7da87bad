package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	orchestratorBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletflow",
		Subsystem: "orchestrator",
		Name:      "build_total",
		Help:      "Count of transaction build calls.",
	}, []string{"wallet", "status"})

	orchestratorBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletflow",
		Subsystem: "orchestrator",
		Name:      "build_duration_seconds",
		Help:      "Duration of transaction build calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"wallet", "status"})

	orchestratorSendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletflow",
		Subsystem: "orchestrator",
		Name:      "send_total",
		Help:      "Count of transaction broadcast calls.",
	}, []string{"wallet", "status"})

	orchestratorSendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletflow",
		Subsystem: "orchestrator",
		Name:      "send_duration_seconds",
		Help:      "Duration of transaction broadcast calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"wallet", "status"})

	orchestratorAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletflow",
		Subsystem: "orchestrator",
		Name:      "attempts_total",
		Help:      "Count of finished deposit attempts by terminal outcome.",
	}, []string{"wallet", "outcome"})
)

// Orchestrator tracks metrics for the deposit state machine.
type Orchestrator struct {
	wallet string
}

// NewOrchestrator constructs an Orchestrator metrics recorder.
func NewOrchestrator(wallet string) *Orchestrator {
	if wallet == "" {
		wallet = "unknown"
	}
	return &Orchestrator{wallet: wallet}
}

// ObserveBuild records one build call outcome and duration.
func (m Orchestrator) ObserveBuild(err error, started time.Time) {
	status := statusLabel(err)
	orchestratorBuildTotal.WithLabelValues(m.wallet, status).Inc()
	orchestratorBuildDuration.WithLabelValues(m.wallet, status).
		Observe(time.Since(started).Seconds())
}

// ObserveSend records one broadcast call outcome and duration.
func (m Orchestrator) ObserveSend(err error, started time.Time) {
	status := statusLabel(err)
	orchestratorSendTotal.WithLabelValues(m.wallet, status).Inc()
	orchestratorSendDuration.WithLabelValues(m.wallet, status).
		Observe(time.Since(started).Seconds())
}

// ObserveAttempt records the terminal outcome of one deposit attempt.
func (m Orchestrator) ObserveAttempt(outcome string) {
	orchestratorAttemptsTotal.WithLabelValues(m.wallet, outcome).Inc()
}
