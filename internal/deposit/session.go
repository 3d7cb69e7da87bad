package deposit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/walletflow/internal/clock"
	"github.com/goodnatureofminers/walletflow/internal/model"
	"github.com/goodnatureofminers/walletflow/internal/validate"
	"go.uber.org/zap"
)

// Defaults for a deposit session.
const (
	DefaultAccount      = "account 0"
	DefaultSettleDelay  = 300 * time.Millisecond
	DefaultPollInterval = 5 * time.Second
)

// Config wires a Session.
type Config struct {
	API       WalletAPI
	Presenter Presenter
	Journal   AttemptJournal
	Logger    *zap.Logger

	Wallet       string
	Account      string
	PollInterval time.Duration
	SettleDelay  time.Duration

	BalanceMetrics      BalanceMonitorMetrics
	EstimatorMetrics    FeeEstimatorMetrics
	OrchestratorMetrics OrchestratorMetrics
}

// Session ties the deposit workflow together: it owns the form values,
// coalesces edits with a settle delay, re-validates on every settled change
// and on every balance or fee change, and gates fee estimation on address and
// amount validity.
type Session struct {
	logger       *zap.Logger
	presenter    Presenter
	estimator    *FeeEstimator
	monitor      *BalanceMonitor
	orchestrator *TransactionOrchestrator
	debouncer    *clock.Debouncer

	mu      sync.Mutex
	form    model.DepositForm
	result  validate.Result
	started bool
	runCtx  context.Context
}

// NewSession builds a Session and its components.
func NewSession(cfg Config) (*Session, error) {
	if cfg.API == nil {
		return nil, errors.New("wallet api is required")
	}
	if cfg.Presenter == nil {
		return nil, errors.New("presenter is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Wallet == "" {
		return nil, errors.New("wallet name is required")
	}
	if cfg.Account == "" {
		cfg.Account = DefaultAccount
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.BalanceMetrics == nil || cfg.EstimatorMetrics == nil || cfg.OrchestratorMetrics == nil {
		return nil, errors.New("metrics are required")
	}

	logger := cfg.Logger.Named("deposit").With(zap.String("wallet", cfg.Wallet))

	estimator, err := NewFeeEstimator(cfg.API, cfg.Presenter, cfg.EstimatorMetrics, logger, cfg.Wallet, cfg.Account)
	if err != nil {
		return nil, fmt.Errorf("build fee estimator: %w", err)
	}
	monitor, err := NewBalanceMonitor(cfg.API, cfg.Presenter, cfg.BalanceMetrics, logger, cfg.Wallet, cfg.PollInterval)
	if err != nil {
		return nil, fmt.Errorf("build balance monitor: %w", err)
	}
	orchestrator, err := NewTransactionOrchestrator(cfg.API, cfg.Presenter, cfg.OrchestratorMetrics, cfg.Journal, estimator, logger, cfg.Wallet, cfg.Account)
	if err != nil {
		return nil, fmt.Errorf("build orchestrator: %w", err)
	}
	debouncer, err := clock.NewDebouncer(cfg.SettleDelay)
	if err != nil {
		return nil, fmt.Errorf("build debouncer: %w", err)
	}

	s := &Session{
		logger:       logger,
		presenter:    cfg.Presenter,
		estimator:    estimator,
		monitor:      monitor,
		orchestrator: orchestrator,
		debouncer:    debouncer,
		form:         model.DepositForm{FeeTier: model.FeeTierMedium},
	}

	// Balance and fee changes re-derive the dynamic amount bound even
	// without a user edit; they do not re-trigger estimation by themselves.
	monitor.SetOnChange(func(model.WalletSnapshot) { s.revalidate() })
	estimator.SetOnChange(func(btcutil.Amount) { s.revalidate() })

	return s, nil
}

// Start opens the balance subscription and the debounced settle loop.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.New("session already started")
	}
	s.started = true
	s.runCtx = ctx
	s.mu.Unlock()

	if err := s.monitor.Start(ctx); err != nil {
		return fmt.Errorf("start balance monitor: %w", err)
	}
	go func() {
		_ = s.debouncer.Run(ctx)
	}()
	go s.settleLoop(ctx)
	return nil
}

// Close cancels the deposit attempt flag and tears down the balance
// subscription.
func (s *Session) Close() {
	s.orchestrator.Cancel()
	s.monitor.Stop()
	s.mu.Lock()
	s.started = false
	s.mu.Unlock()
}

// SetAddress updates the destination address and schedules a settle.
func (s *Session) SetAddress(v string) { s.setField(func(f *model.DepositForm) { f.Address = v }) }

// SetAmount updates the amount and schedules a settle.
func (s *Session) SetAmount(v string) { s.setField(func(f *model.DepositForm) { f.Amount = v }) }

// SetFeeTier updates the fee tier and schedules a settle.
func (s *Session) SetFeeTier(t model.FeeTier) { s.setField(func(f *model.DepositForm) { f.FeeTier = t }) }

// SetPassword updates the password and schedules a settle.
func (s *Session) SetPassword(v string) { s.setField(func(f *model.DepositForm) { f.Password = v }) }

func (s *Session) setField(mutate func(*model.DepositForm)) {
	s.mu.Lock()
	mutate(&s.form)
	s.mu.Unlock()
	s.debouncer.Trigger()
}

// Form returns a copy of the current field values.
func (s *Session) Form() model.DepositForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Validation returns the most recent evaluation result.
func (s *Session) Validation() validate.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Fee returns the latest applied fee estimate.
func (s *Session) Fee() (btcutil.Amount, bool) {
	return s.estimator.Fee()
}

// Balance returns the latest balance snapshot.
func (s *Session) Balance() (model.WalletSnapshot, bool) {
	return s.monitor.Snapshot()
}

// Monitor exposes the balance monitor for lifecycle control.
func (s *Session) Monitor() *BalanceMonitor {
	return s.monitor
}

// Orchestrator exposes the deposit state machine.
func (s *Session) Orchestrator() *TransactionOrchestrator {
	return s.orchestrator
}

// Submit validates the full form against the live balance and fee and, when
// valid, drives one deposit attempt to completion.
func (s *Session) Submit(ctx context.Context) error {
	result := s.revalidate()
	if !result.Valid() {
		return fmt.Errorf("form invalid: %s", strings.Join(result.Messages(), "; "))
	}
	return s.orchestrator.Deposit(ctx, s.Form())
}

// Cancel clears the attempt flag of the in-flight deposit, if any.
func (s *Session) Cancel() {
	s.orchestrator.Cancel()
}

// UseMaxBalance patches the amount field to the maximum spendable amount for
// the current fee tier, then re-validates and re-estimates.
func (s *Session) UseMaxBalance(ctx context.Context) error {
	max, err := s.orchestrator.GetMaxBalance(ctx, s.Form().FeeTier)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.form.Amount = max
	form := s.form
	s.mu.Unlock()

	result := s.revalidate()
	if result.Address.Valid && result.Amount.Valid {
		s.estimator.Estimate(ctx, form)
	}
	return nil
}

// Settle runs one settled-form step synchronously: validation, then fee
// estimation when address and amount are valid. The debounced loop calls this
// after each quiet period; one-shot callers may invoke it directly.
func (s *Session) Settle(ctx context.Context) {
	result := s.revalidate()
	if result.Address.Valid && result.Amount.Valid {
		s.estimator.Estimate(ctx, s.Form())
	}
}

func (s *Session) settleLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.debouncer.Settled():
			go s.Settle(ctx)
		}
	}
}

// revalidate evaluates the form against the live balance/fee snapshot and
// publishes the active error messages.
func (s *Session) revalidate() validate.Result {
	snap, _ := s.monitor.Snapshot()
	fee, _ := s.estimator.Fee()

	s.mu.Lock()
	snapshot := validate.Snapshot{
		Address:      s.form.Address,
		Amount:       s.form.Amount,
		FeeTier:      s.form.FeeTier,
		Password:     s.form.Password,
		TotalBalance: snap.Total,
		EstimatedFee: fee,
	}
	result := validate.Evaluate(snapshot)
	s.result = result
	s.mu.Unlock()

	s.presenter.PublishFieldErrors(result.Messages())
	return result
}
