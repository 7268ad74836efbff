package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"github.com/razelos/appsmith/internal/setup"
	"github.com/razelos/appsmith/internal/setup/config"
	"github.com/razelos/appsmith/internal/utils"
)

func main() {
	cfg, err := config.LoadEnvFile(".env")
	if err != nil {
		utils.NewLogger("info", "json").WithError(err).Fatal("failed to load configuration")
	}

	log := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, err := setup.Server(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to start server")
	}

	sm := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server is running")
		if err := sm.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("received terminate, graceful shutdown")

	tc, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sm.Shutdown(tc); err != nil {
		log.WithError(err).Error("shutdown did not complete")
	}
	helpers.DisconnectRedis(log)
}
