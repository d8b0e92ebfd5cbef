package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/village-dashboard/internal/bootstrap"
	"github.com/GregMSThompson/village-dashboard/internal/config"
	"github.com/GregMSThompson/village-dashboard/internal/handlers"
	"github.com/GregMSThompson/village-dashboard/internal/response"
	"github.com/GregMSThompson/village-dashboard/internal/router"
	"github.com/GregMSThompson/village-dashboard/internal/services"
)

const shutdownTimeout = 10 * time.Second

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// services
	sessv := services.NewSessionService(bs.Sessions, bs.DashboardFactory())
	catsv := services.NewCatalogService()

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.SessionSvc = sessv
	deps.CatalogSvc = catsv

	// router
	r := router.NewRouter(deps, cfg.CORSOrigins)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bs.Log.Info("server listening", "addr", srv.Addr, "charts_enabled", bs.Charts != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bs.Log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	exitOnError("server failed", g.Wait(), bs.Log)
}
