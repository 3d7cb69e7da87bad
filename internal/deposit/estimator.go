package deposit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/walletflow/internal/classify"
	"github.com/goodnatureofminers/walletflow/internal/model"
	"github.com/goodnatureofminers/walletflow/internal/walletapi"
	"go.uber.org/zap"
)

// FeeEstimator prices candidate transactions. Requests carry a monotonically
// increasing sequence number; a response is applied only when no newer request
// was issued meanwhile, so out-of-order completions never clobber a fresher
// estimate. Estimates are stale once address, amount, or fee tier change and
// must be recomputed, never reused across edits.
type FeeEstimator struct {
	api       WalletAPI
	presenter Presenter
	metrics   FeeEstimatorMetrics
	logger    *zap.Logger
	wallet    string
	account   string

	mu       sync.Mutex
	issued   uint64
	fee      btcutil.Amount
	hasFee   bool
	onChange func(btcutil.Amount)
}

// NewFeeEstimator builds a FeeEstimator with dependencies.
func NewFeeEstimator(api WalletAPI, presenter Presenter, metrics FeeEstimatorMetrics, logger *zap.Logger, wallet, account string) (*FeeEstimator, error) {
	if api == nil {
		return nil, errors.New("wallet api is required")
	}
	if presenter == nil {
		return nil, errors.New("presenter is required")
	}
	if metrics == nil {
		return nil, errors.New("fee estimator metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &FeeEstimator{
		api:       api,
		presenter: presenter,
		metrics:   metrics,
		logger:    logger.Named("feeEstimator"),
		wallet:    wallet,
		account:   account,
	}, nil
}

// SetOnChange registers the callback invoked after the applied fee changes.
func (e *FeeEstimator) SetOnChange(fn func(btcutil.Amount)) {
	e.mu.Lock()
	e.onChange = fn
	e.mu.Unlock()
}

// Fee returns the most recently applied estimate, in satoshis.
func (e *FeeEstimator) Fee() (btcutil.Amount, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fee, e.hasFee
}

// SetFee applies a fee produced outside estimation, such as a build result or
// a max-balance response. Any in-flight estimate becomes stale.
func (e *FeeEstimator) SetFee(fee btcutil.Amount) {
	e.mu.Lock()
	e.issued++
	e.fee = fee
	e.hasFee = true
	fn := e.onChange
	e.mu.Unlock()

	if fn != nil {
		fn(fee)
	}
}

// Estimate prices the candidate transaction described by the form. Callers
// gate on address and amount validity; Estimate itself never checks.
func (e *FeeEstimator) Estimate(ctx context.Context, form model.DepositForm) {
	e.mu.Lock()
	e.issued++
	seq := e.issued
	e.mu.Unlock()

	started := time.Now()
	fee, err := e.api.EstimateFee(ctx, walletapi.EstimateFeeRequest{
		WalletName:       e.wallet,
		AccountName:      e.account,
		Recipients:       []walletapi.Recipient{{DestinationAddress: form.Address, Amount: form.Amount}},
		FeeType:          string(form.FeeTier),
		AllowUnconfirmed: true,
	})
	e.metrics.ObserveEstimate(err, started)
	if err != nil {
		if ctx.Err() == nil {
			e.routeFailure(err)
		}
		return
	}

	e.mu.Lock()
	if seq != e.issued {
		e.mu.Unlock()
		e.metrics.ObserveStaleDrop()
		e.logger.Debug("dropping superseded fee estimate", zap.Int64("fee", int64(fee)))
		return
	}
	e.fee = fee
	e.hasFee = true
	fn := e.onChange
	e.mu.Unlock()

	if fn != nil {
		fn(fee)
	}
}

func (e *FeeEstimator) routeFailure(err error) {
	switch c := classify.Classify(err); c.Kind {
	case classify.Connectivity:
		e.logger.Error("fee estimation failed: wallet service unreachable", zap.Error(err))
		e.presenter.ShowDialog(connectivityTitle, connectivityMessage)
	case classify.DomainMessage:
		e.logger.Warn("fee estimation rejected", zap.String("message", c.Message))
		e.presenter.ShowFormError(c.Message)
	default:
		e.logger.Warn("fee estimation failed", zap.Error(err))
	}
}
