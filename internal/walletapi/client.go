// Package walletapi is the HTTP JSON client for the remote wallet service.
package walletapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/walletflow/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Metrics records metrics for wallet API calls.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Client talks to the wallet service. All failures are returned as *StatusError
// so callers can classify them without inspecting raw status codes or bodies.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient constructs a rate-limited, instrumented wallet API client.
func NewClient(baseURL string, rps int, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("wallet api base url is required")
	}
	if metrics == nil {
		return nil, errors.New("wallet api metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    ratelimit.New(rps),
		metrics:    metrics,
		logger:     logger.Named("walletapi"),
	}, nil
}

// WalletBalance fetches the confirmed and unconfirmed balance of a wallet.
func (c *Client) WalletBalance(ctx context.Context, walletName string) (snap model.WalletSnapshot, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("wallet_balance", err, started)
	}()

	query := url.Values{"WalletName": {walletName}}
	var res balanceResponse
	if err = c.do(ctx, http.MethodGet, "/api/wallet/balance", query, nil, &res); err != nil {
		return model.WalletSnapshot{}, err
	}

	for _, b := range res.Balances {
		snap.Confirmed += b.AmountConfirmed
		snap.Unconfirmed += b.AmountUnconfirmed
	}
	snap.Total = snap.Confirmed + snap.Unconfirmed
	snap.FetchedAt = time.Now()
	return snap, nil
}

// MaximumBalance fetches the maximum spendable amount for a fee tier.
func (c *Client) MaximumBalance(ctx context.Context, walletName string, tier model.FeeTier) (res MaxBalanceResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("maximum_balance", err, started)
	}()

	query := url.Values{
		"WalletName":       {walletName},
		"FeeType":          {string(tier)},
		"AllowUnconfirmed": {"true"},
	}
	if err = c.do(ctx, http.MethodGet, "/api/wallet/maxbalance", query, nil, &res); err != nil {
		return MaxBalanceResult{}, err
	}
	return res, nil
}

// EstimateFee prices a candidate transaction. The result is in satoshis.
func (c *Client) EstimateFee(ctx context.Context, req EstimateFeeRequest) (fee btcutil.Amount, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("estimate_fee", err, started)
	}()

	var raw int64
	if err = c.do(ctx, http.MethodPost, "/api/wallet/estimate-txfee", nil, req, &raw); err != nil {
		return 0, err
	}
	return btcutil.Amount(raw), nil
}

// BuildTransaction constructs a signed transaction on the wallet service.
func (c *Client) BuildTransaction(ctx context.Context, req BuildTransactionRequest) (res *BuildResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("build_transaction", err, started)
	}()

	res = &BuildResult{}
	if err = c.do(ctx, http.MethodPost, "/api/wallet/build-transaction", nil, req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// SendTransaction broadcasts previously built transaction hex.
func (c *Client) SendTransaction(ctx context.Context, txHex string) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("send_transaction", err, started)
	}()

	return c.do(ctx, http.MethodPost, "/api/wallet/send-transaction", nil, sendTransactionRequest{Hex: txHex}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	c.limiter.Take()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &StatusError{Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &StatusError{Cause: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		se := newStatusError(resp.StatusCode, data)
		c.logger.Debug("wallet api call failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Int("errors", len(se.Entries)),
		)
		return se
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return nil
}
