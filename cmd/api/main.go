// Package main é o ponto de entrada da API de cobranças PIX do Banco do Brasil
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Lillow/PixIntegration/internal/adapters/bb"
	"github.com/Lillow/PixIntegration/internal/config"
	"github.com/Lillow/PixIntegration/internal/handlers"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 10 * time.Second
)

func main() {
	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		slog.Error("erro ao carregar configurações", "error", err)
		os.Exit(1)
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	var logger *slog.Logger
	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	slog.SetDefault(logger)

	logger.Info("iniciando API PIX",
		"env", cfg.Env,
		"sandbox", cfg.BB.Sandbox,
		"pix_url", cfg.BB.PixURL,
	)
	if cfg.IsProduction() && cfg.BB.Sandbox {
		logger.Warn("ambiente de produção apontando para a homologação do BB")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// O cliente já autentica na construção
	client, err := bb.NewClient(ctx, &cfg.BB, bb.WithLogger(logger))
	if err != nil {
		logger.Error("erro ao inicializar cliente BB", "error", err)
		cancel()
		return
	}
	logger.Info("cliente BB inicializado")

	handler := handlers.NewChargeHandler(client, logger)
	router := handlers.NewRouter(handler)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("servidor HTTP iniciado", "addr", addr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("erro ao iniciar servidor", "error", serveErr)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("encerrando servidor")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro ao encerrar servidor", "error", err)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
