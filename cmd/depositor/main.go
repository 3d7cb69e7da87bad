package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/walletflow/internal/deposit"
	"github.com/goodnatureofminers/walletflow/internal/journal"
	"github.com/goodnatureofminers/walletflow/internal/metrics"
	"github.com/goodnatureofminers/walletflow/internal/model"
	"github.com/goodnatureofminers/walletflow/internal/walletapi"
)

type config struct {
	WalletURL   string        `long:"wallet-url" env:"WALLETFLOW_WALLET_URL" description:"wallet service base URL" default:"http://127.0.0.1:8080"`
	Wallet      string        `long:"wallet" env:"WALLETFLOW_WALLET" description:"wallet name" required:"true"`
	Account     string        `long:"account" env:"WALLETFLOW_ACCOUNT" description:"account name" default:"account 0"`
	Address     string        `long:"address" description:"destination address" required:"true"`
	Amount      string        `long:"amount" description:"amount to deposit"`
	FeeTier     string        `long:"fee-tier" description:"fee tier: low, medium or high" default:"medium"`
	Max         bool          `long:"max" description:"deposit the maximum spendable amount"`
	Password    string        `long:"password" env:"WALLETFLOW_PASSWORD" description:"wallet password"`
	RPS         int           `long:"rps" env:"WALLETFLOW_RPS" description:"wallet service request rate limit" default:"10"`
	JournalPath string        `long:"journal" env:"WALLETFLOW_JOURNAL" description:"path to the attempt journal database"`
	Timeout     time.Duration `long:"timeout" env:"WALLETFLOW_TIMEOUT" description:"overall deposit timeout" default:"2m"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.Password == "" {
		logger.Fatal("wallet password is required, set WALLETFLOW_PASSWORD")
	}
	if !cfg.Max && cfg.Amount == "" {
		logger.Fatal("either --amount or --max is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("deposit failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	tier, err := model.ParseFeeTier(cfg.FeeTier)
	if err != nil {
		return err
	}

	client, err := walletapi.NewClient(cfg.WalletURL, cfg.RPS, metrics.NewWalletAPI(cfg.Wallet), logger)
	if err != nil {
		return fmt.Errorf("init wallet client: %w", err)
	}

	var attempts deposit.AttemptJournal
	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			return fmt.Errorf("open attempt journal: %w", err)
		}
		defer func() {
			_ = j.Close()
		}()
		attempts = j
	}

	session, err := deposit.NewSession(deposit.Config{
		API:                 client,
		Presenter:           deposit.NewLogPresenter(logger),
		Journal:             attempts,
		Logger:              logger,
		Wallet:              cfg.Wallet,
		Account:             cfg.Account,
		BalanceMetrics:      metrics.NewBalanceMonitor(cfg.Wallet),
		EstimatorMetrics:    metrics.NewFeeEstimator(cfg.Wallet),
		OrchestratorMetrics: metrics.NewOrchestrator(cfg.Wallet),
	})
	if err != nil {
		return fmt.Errorf("build deposit session: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := session.Start(ctx); err != nil {
		return err
	}
	defer session.Close()

	// The amount bound derives from the live balance, so wait for the first
	// refresh before validating.
	if err := waitForBalance(ctx, session); err != nil {
		return err
	}

	session.SetAddress(cfg.Address)
	session.SetFeeTier(tier)
	session.SetPassword(cfg.Password)

	if cfg.Max {
		if err := session.UseMaxBalance(ctx); err != nil {
			return fmt.Errorf("resolve maximum balance: %w", err)
		}
	} else {
		session.SetAmount(cfg.Amount)
	}

	// One-shot flow: settle synchronously instead of waiting for the
	// debounced loop, then drive the attempt to completion.
	session.Settle(ctx)
	return session.Submit(ctx)
}

func waitForBalance(ctx context.Context, session *deposit.Session) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		if _, ok := session.Balance(); ok {
			return nil
		}
		if session.Monitor().State() == deposit.MonitorStopped {
			return errors.New("balance monitor stopped before the first refresh")
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
