package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/carretel-crm/internal/app"
	"github.com/xavierca1/carretel-crm/internal/config"
	"github.com/xavierca1/carretel-crm/internal/infra/http/handlers"
	"github.com/xavierca1/carretel-crm/internal/infra/http/middleware"
	"github.com/xavierca1/carretel-crm/internal/infra/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run devolve o erro em vez de sair, para os defers rodarem antes do exit.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Store, repositório e IA
	crm, err := app.New(ctx, cfg, zlog)
	if err != nil {
		return fmt.Errorf("falha ao iniciar aplicação: %w", err)
	}
	defer crm.Close()

	crm.Summarizer.OnOutcome = middleware.RecordInsight

	// 2. Handlers
	insightLimiter := handlers.NewRateLimiter(10, time.Minute) // 10 análises/min por IP
	defer insightLimiter.Stop()
	insightLimiter.TrustProxy = cfg.TrustProxy

	router := handlers.NewRouter(cfg.AllowedOrigins, handlers.Handlers{
		Contacts:      handlers.NewContactHandler(crm.Repo),
		Opportunities: handlers.NewOpportunityHandler(crm.Repo),
		Dashboard:     handlers.NewDashboardHandler(crm.Repo),
		Insights:      handlers.NewInsightHandler(crm.Repo, crm.Insights, insightLimiter),
		Health:        handlers.NewHealthHandler(crm.Store, crm.Gemini.Configured),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 3. Servidor + desligamento gracioso
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info("🔥 Carretel CRM rodando", zap.String("addr", cfg.HTTPAddr), zap.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zlog.Error("servidor encerrado com erro", zap.Error(err))
		return err
	}
	zlog.Info("servidor encerrado")
	return nil
}
