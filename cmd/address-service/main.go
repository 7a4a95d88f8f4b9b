package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studentapi/modules/appconfig"
	"studentapi/modules/server"

	address_http "studentapi/core/address/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := appconfig.LoadAddressService()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	srv, err := server.New(
		cfg.Host, cfg.Port,
		server.WithWriteTimeout(10*time.Second),
		server.WithServices(address_http.NewAddressAPI()),
	)
	if err != nil {
		slog.ErrorContext(ctx, "init server error", slog.Any("error", err))
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "running server error", slog.Any("error", err))
		os.Exit(1)
	}
}
