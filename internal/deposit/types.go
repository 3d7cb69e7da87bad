// Package deposit contains the client-side orchestration of a wallet deposit:
// debounced validation, fee estimation, balance polling, and the
// build-then-send transaction state machine.
package deposit

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/walletflow/internal/journal"
	"github.com/goodnatureofminers/walletflow/internal/model"
	"github.com/goodnatureofminers/walletflow/internal/walletapi"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// WalletAPI is the remote wallet service surface the workflow depends on.
	WalletAPI interface {
		WalletBalance(ctx context.Context, walletName string) (model.WalletSnapshot, error)
		MaximumBalance(ctx context.Context, walletName string, tier model.FeeTier) (walletapi.MaxBalanceResult, error)
		EstimateFee(ctx context.Context, req walletapi.EstimateFeeRequest) (btcutil.Amount, error)
		BuildTransaction(ctx context.Context, req walletapi.BuildTransactionRequest) (*walletapi.BuildResult, error)
		SendTransaction(ctx context.Context, txHex string) error
	}

	// Presenter is the UI layer the workflow signals into. The workflow never
	// renders anything itself.
	Presenter interface {
		ShowConfirmation(tx model.BuiltTransaction)
		ShowDialog(title, message string)
		ShowFormError(message string)
		PublishFieldErrors(messages []string)
	}

	// AttemptJournal records finished deposit attempts.
	AttemptJournal interface {
		Record(ctx context.Context, a journal.Attempt) error
	}

	// BalanceMonitorMetrics records metrics for the balance polling loop.
	BalanceMonitorMetrics interface {
		ObserveRefresh(err error, started time.Time)
		ObserveRestart()
	}

	// FeeEstimatorMetrics records metrics for fee estimation.
	FeeEstimatorMetrics interface {
		ObserveEstimate(err error, started time.Time)
		ObserveStaleDrop()
	}

	// OrchestratorMetrics records metrics for the deposit state machine.
	OrchestratorMetrics interface {
		ObserveBuild(err error, started time.Time)
		ObserveSend(err error, started time.Time)
		ObserveAttempt(outcome string)
	}
)

const (
	connectivityTitle   = "Connection failed"
	connectivityMessage = "Unable to reach the wallet service. Check your connection and try again."
)
