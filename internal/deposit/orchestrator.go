package deposit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/walletflow/internal/classify"
	"github.com/goodnatureofminers/walletflow/internal/journal"
	"github.com/goodnatureofminers/walletflow/internal/model"
	"github.com/goodnatureofminers/walletflow/internal/walletapi"
	"go.uber.org/zap"
)

// OrchestratorState is the state of the deposit state machine.
type OrchestratorState int

const (
	StateIdle OrchestratorState = iota
	StateBuilding
	StateSending
	StateConfirming
	StateFailed
)

func (s OrchestratorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StateSending:
		return "sending"
	case StateConfirming:
		return "confirming"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrDepositInProgress is returned when a deposit is started while a previous
// attempt is still running.
var ErrDepositInProgress = errors.New("deposit already in progress")

// TransactionOrchestrator sequences one deposit attempt: build the
// transaction on the wallet service, then broadcast it. A broadcast is only
// ever issued after a successful build in the same attempt with the attempt
// flag still set; clearing the flag discards any late response. After any
// failure the machine returns to idle so the user can retry.
type TransactionOrchestrator struct {
	api       WalletAPI
	presenter Presenter
	metrics   OrchestratorMetrics
	journal   AttemptJournal
	estimator *FeeEstimator
	logger    *zap.Logger
	wallet    string
	account   string

	mu         sync.Mutex
	state      OrchestratorState
	depositing bool
}

// NewTransactionOrchestrator builds a TransactionOrchestrator with
// dependencies. The journal may be nil.
func NewTransactionOrchestrator(api WalletAPI, presenter Presenter, metrics OrchestratorMetrics, attempts AttemptJournal, estimator *FeeEstimator, logger *zap.Logger, wallet, account string) (*TransactionOrchestrator, error) {
	if api == nil {
		return nil, errors.New("wallet api is required")
	}
	if presenter == nil {
		return nil, errors.New("presenter is required")
	}
	if metrics == nil {
		return nil, errors.New("orchestrator metrics is required")
	}
	if estimator == nil {
		return nil, errors.New("fee estimator is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &TransactionOrchestrator{
		api:       api,
		presenter: presenter,
		metrics:   metrics,
		journal:   attempts,
		estimator: estimator,
		logger:    logger.Named("orchestrator").With(zap.String("wallet", wallet)),
		wallet:    wallet,
		account:   account,
	}, nil
}

// State returns the current state of the machine.
func (o *TransactionOrchestrator) State() OrchestratorState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Depositing reports whether a deposit attempt is in flight.
func (o *TransactionOrchestrator) Depositing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.depositing
}

// Cancel clears the attempt flag. A pending build or send response that
// observes a cleared flag discards its result instead of advancing the
// machine. The in-flight HTTP call itself is not aborted.
func (o *TransactionOrchestrator) Cancel() {
	o.mu.Lock()
	o.depositing = false
	o.mu.Unlock()
}

// Deposit drives one build-then-send attempt from the given form values and
// the latest applied fee estimate.
func (o *TransactionOrchestrator) Deposit(ctx context.Context, form model.DepositForm) error {
	o.mu.Lock()
	if o.depositing {
		o.mu.Unlock()
		return ErrDepositInProgress
	}
	o.depositing = true
	o.state = StateBuilding
	o.mu.Unlock()

	fee, _ := o.estimator.Fee()
	amount, err := model.ParseAmount(form.Amount)
	if err != nil {
		// Validation runs upstream; keep the journal record best-effort.
		amount = 0
	}

	started := time.Now()
	res, err := o.api.BuildTransaction(ctx, walletapi.BuildTransactionRequest{
		WalletName:       o.wallet,
		AccountName:      o.account,
		Password:         form.Password,
		Recipients:       []walletapi.Recipient{{DestinationAddress: form.Address, Amount: form.Amount}},
		FeeType:          string(form.FeeTier),
		FeeAmount:        model.FormatAmount(fee),
		AllowUnconfirmed: true,
	})
	o.metrics.ObserveBuild(err, started)
	if err != nil {
		o.fail(ctx, journal.OutcomeBuildFailed, form, amount, fee, err)
		return err
	}

	o.estimator.SetFee(res.Fee)

	o.mu.Lock()
	if !o.depositing {
		o.state = StateIdle
		o.mu.Unlock()
		o.logger.Info("attempt cancelled, discarding built transaction")
		o.metrics.ObserveAttempt(journal.OutcomeCancelled)
		o.finish(ctx, journal.Attempt{
			Wallet:  o.wallet,
			Address: form.Address,
			Amount:  amount,
			Fee:     res.Fee,
			Outcome: journal.OutcomeCancelled,
		})
		return nil
	}
	o.state = StateSending
	o.mu.Unlock()

	built := model.BuiltTransaction{
		Hex:       res.Hex,
		Fee:       res.Fee,
		Wallet:    o.wallet,
		Account:   o.account,
		Recipient: form.Address,
		Amount:    amount,
		FeeTier:   form.FeeTier,
	}
	return o.send(ctx, form, built)
}

func (o *TransactionOrchestrator) send(ctx context.Context, form model.DepositForm, built model.BuiltTransaction) error {
	started := time.Now()
	err := o.api.SendTransaction(ctx, built.Hex)
	o.metrics.ObserveSend(err, started)
	if err != nil {
		o.fail(ctx, journal.OutcomeSendFailed, form, built.Amount, built.Fee, err)
		return err
	}

	o.mu.Lock()
	if !o.depositing {
		o.state = StateIdle
		o.mu.Unlock()
		o.logger.Info("attempt cancelled after broadcast, skipping confirmation")
		o.metrics.ObserveAttempt(journal.OutcomeCancelled)
		o.finish(ctx, journal.Attempt{
			Wallet:  o.wallet,
			Address: built.Recipient,
			Amount:  built.Amount,
			Fee:     built.Fee,
			Outcome: journal.OutcomeCancelled,
		})
		return nil
	}
	o.state = StateConfirming
	o.depositing = false
	o.mu.Unlock()

	txID, err := built.TxID()
	if err != nil {
		o.logger.Warn("could not derive txid from built hex", zap.Error(err))
		txID = ""
	}
	o.logger.Info("transaction broadcast accepted",
		zap.String("txid", txID),
		zap.String("fee", model.FormatAmount(built.Fee)),
	)

	o.presenter.ShowConfirmation(built)
	o.metrics.ObserveAttempt(journal.OutcomeConfirmed)
	o.finish(ctx, journal.Attempt{
		Wallet:  o.wallet,
		Address: built.Recipient,
		Amount:  built.Amount,
		Fee:     built.Fee,
		TxID:    txID,
		Outcome: journal.OutcomeConfirmed,
	})

	o.mu.Lock()
	o.state = StateIdle
	o.mu.Unlock()
	return nil
}

// GetMaxBalance fetches the maximum spendable amount for the fee tier and
// returns it formatted for the amount field. It also applies the returned fee.
// This helper bypasses the building/sending states entirely.
func (o *TransactionOrchestrator) GetMaxBalance(ctx context.Context, tier model.FeeTier) (string, error) {
	res, err := o.api.MaximumBalance(ctx, o.wallet, tier)
	if err != nil {
		o.routeFailure(err)
		return "", err
	}
	o.estimator.SetFee(res.Fee)
	return model.FormatAmount(res.MaxSpendableAmount), nil
}

// fail terminates the current attempt: it clears the attempt flag, routes the
// error to its consumer, records the outcome, and returns the machine to idle.
func (o *TransactionOrchestrator) fail(ctx context.Context, outcome string, form model.DepositForm, amount, fee btcutil.Amount, err error) {
	o.mu.Lock()
	o.depositing = false
	o.state = StateFailed
	o.mu.Unlock()

	c := o.routeFailure(err)
	o.metrics.ObserveAttempt(outcome)
	o.finish(ctx, journal.Attempt{
		Wallet:  o.wallet,
		Address: form.Address,
		Amount:  amount,
		Fee:     fee,
		Outcome: outcome,
		Message: c.Message,
	})

	o.mu.Lock()
	o.state = StateIdle
	o.mu.Unlock()
}

func (o *TransactionOrchestrator) routeFailure(err error) classify.Classification {
	c := classify.Classify(err)
	switch c.Kind {
	case classify.Connectivity:
		o.logger.Error("wallet service unreachable", zap.Error(err))
		o.presenter.ShowDialog(connectivityTitle, connectivityMessage)
	case classify.DomainMessage:
		o.logger.Warn("wallet service rejected the request", zap.String("message", c.Message))
		o.presenter.ShowFormError(c.Message)
	default:
		o.logger.Warn("wallet service call failed", zap.Error(err))
	}
	return c
}

func (o *TransactionOrchestrator) finish(ctx context.Context, a journal.Attempt) {
	if o.journal == nil {
		return
	}
	if err := o.journal.Record(ctx, a); err != nil {
		o.logger.Warn("could not record deposit attempt", zap.Error(err))
	}
}
