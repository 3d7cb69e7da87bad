package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/walletflow/internal/deposit"
	"github.com/goodnatureofminers/walletflow/internal/metrics"
	"github.com/goodnatureofminers/walletflow/internal/model"
	"github.com/goodnatureofminers/walletflow/internal/walletapi"
)

var config struct {
	WalletURL    string        `long:"wallet-url" env:"BALANCE_WATCHER_WALLET_URL" description:"wallet service base URL" default:"http://127.0.0.1:8080"`
	Wallet       string        `long:"wallet" env:"BALANCE_WATCHER_WALLET" description:"wallet name" required:"true"`
	Addr         string        `long:"addr" env:"BALANCE_WATCHER_ADDR" description:"metrics addr" default:":8001"`
	PollInterval time.Duration `long:"poll-interval" env:"BALANCE_WATCHER_POLL_INTERVAL" description:"balance poll interval" default:"5s"`
	RPS          int           `long:"rps" env:"BALANCE_WATCHER_RPS" description:"wallet service request rate limit" default:"10"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	client, err := walletapi.NewClient(config.WalletURL, config.RPS, metrics.NewWalletAPI(config.Wallet), logger)
	if err != nil {
		logger.Fatal("init wallet client", zap.Error(err))
	}

	monitor, err := deposit.NewBalanceMonitor(
		client,
		deposit.NewLogPresenter(logger),
		metrics.NewBalanceMonitor(config.Wallet),
		logger,
		config.Wallet,
		config.PollInterval,
	)
	if err != nil {
		logger.Fatal("init balance monitor", zap.Error(err))
	}
	monitor.SetOnChange(func(snap model.WalletSnapshot) {
		logger.Info("balance refreshed",
			zap.String("confirmed", model.FormatAmount(snap.Confirmed)),
			zap.String("unconfirmed", model.FormatAmount(snap.Unconfirmed)),
			zap.String("total", model.FormatAmount(snap.Total)),
		)
	})

	if err := monitor.Start(ctx); err != nil {
		logger.Fatal("start balance monitor", zap.Error(err))
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the balance monitor")
		monitor.Stop()
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
