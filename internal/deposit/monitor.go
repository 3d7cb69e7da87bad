package deposit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/walletflow/internal/classify"
	"github.com/goodnatureofminers/walletflow/internal/clock"
	"github.com/goodnatureofminers/walletflow/internal/model"
	"go.uber.org/zap"
)

// MonitorState is the lifecycle state of the balance monitor.
type MonitorState int

const (
	// MonitorIdle means the monitor was never started.
	MonitorIdle MonitorState = iota
	// MonitorActive means the polling subscription is open.
	MonitorActive
	// MonitorStopped is terminal until an explicit restart.
	MonitorStopped
)

func (s MonitorState) String() string {
	switch s {
	case MonitorIdle:
		return "idle"
	case MonitorActive:
		return "active"
	case MonitorStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// BalanceMonitor owns the wallet balance snapshot and keeps it fresh by
// polling. Connectivity failures and description-bearing domain errors stop
// the monitor and surface a dialog; other domain errors restart the
// subscription silently.
type BalanceMonitor struct {
	api       WalletAPI
	presenter Presenter
	metrics   BalanceMonitorMetrics
	logger    *zap.Logger
	wallet    string
	interval  time.Duration
	sleep     func(context.Context, time.Duration) error

	mu       sync.Mutex
	state    MonitorState
	snapshot model.WalletSnapshot
	hasSnap  bool
	onChange func(model.WalletSnapshot)
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewBalanceMonitor builds a BalanceMonitor with dependencies.
func NewBalanceMonitor(api WalletAPI, presenter Presenter, metrics BalanceMonitorMetrics, logger *zap.Logger, wallet string, interval time.Duration) (*BalanceMonitor, error) {
	if api == nil {
		return nil, errors.New("wallet api is required")
	}
	if presenter == nil {
		return nil, errors.New("presenter is required")
	}
	if metrics == nil {
		return nil, errors.New("balance monitor metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if interval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}
	return &BalanceMonitor{
		api:       api,
		presenter: presenter,
		metrics:   metrics,
		logger:    logger.Named("balanceMonitor").With(zap.String("wallet", wallet)),
		wallet:    wallet,
		interval:  interval,
		sleep:     clock.SleepWithContext,
	}, nil
}

// SetOnChange registers the callback invoked after every successful refresh.
func (m *BalanceMonitor) SetOnChange(fn func(model.WalletSnapshot)) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// Snapshot returns the latest balance snapshot, if one was fetched.
func (m *BalanceMonitor) Snapshot() (model.WalletSnapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot, m.hasSnap
}

// State returns the current lifecycle state.
func (m *BalanceMonitor) State() MonitorState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start opens the polling subscription. It fails if the monitor is already
// active; a stopped monitor may be started again.
func (m *BalanceMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.state == MonitorActive {
		m.mu.Unlock()
		return errors.New("balance monitor already active")
	}
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	m.state = MonitorActive
	done := m.done
	m.mu.Unlock()

	go m.run(ctx, cancel, done)
	return nil
}

// Stop cancels the subscription and waits for the polling loop to exit.
// Stopping an inactive monitor is a no-op.
func (m *BalanceMonitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (m *BalanceMonitor) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	defer close(done)
	defer func() {
		cancel()
		m.mu.Lock()
		m.state = MonitorStopped
		m.mu.Unlock()
	}()

	for {
		if ctx.Err() != nil {
			return
		}

		started := time.Now()
		snap, err := m.api.WalletBalance(ctx, m.wallet)
		m.metrics.ObserveRefresh(err, started)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if !m.handleFailure(err) {
				return
			}
			// Fresh subscription, poll again right away.
			continue
		}

		m.apply(snap)

		if err := m.sleep(ctx, m.interval); err != nil {
			return
		}
	}
}

// handleFailure reports whether polling should continue with a fresh
// subscription.
func (m *BalanceMonitor) handleFailure(err error) bool {
	c := classify.Classify(err)
	switch {
	case c.Kind == classify.Connectivity:
		m.logger.Error("balance refresh failed, wallet service unreachable", zap.Error(err))
		m.presenter.ShowDialog(connectivityTitle, connectivityMessage)
		return false
	case c.Kind == classify.DomainMessage && c.DescriptionBearing:
		m.logger.Error("balance refresh rejected", zap.String("message", c.Message))
		m.presenter.ShowDialog("", c.Message)
		return false
	default:
		m.logger.Warn("balance refresh hiccup, restarting subscription", zap.Error(err))
		m.metrics.ObserveRestart()
		return true
	}
}

func (m *BalanceMonitor) apply(snap model.WalletSnapshot) {
	m.mu.Lock()
	m.snapshot = snap
	m.hasSnap = true
	fn := m.onChange
	m.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}
