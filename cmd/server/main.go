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

	"github.com/webnova/backend/internal/config"
	"github.com/webnova/backend/internal/handler"
	"github.com/webnova/backend/internal/logging"
	"github.com/webnova/backend/internal/repository"
	"github.com/webnova/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	stores, err := repository.Open(context.Background(), repository.Options{
		Driver:      cfg.StorageDriver,
		DataDir:     cfg.DataDir,
		SQLitePath:  cfg.SQLitePath,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		logging.Fatal("failed to open storage", "driver", cfg.StorageDriver, "error", err)
	}
	defer func() {
		if err := stores.Close(); err != nil {
			slog.Error("storage close failed", "error", err)
		}
	}()

	contactService := service.NewContactService(stores.Contacts)
	newsletterService := service.NewNewsletterService(stores.Subscribers)

	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: handler.NewRouter(handler.RouterConfig{
			DB:                stores.DB,
			ContactService:    contactService,
			NewsletterService: newsletterService,
			FrontendURL:       cfg.FrontendURL,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "storage", stores.Driver, "frontend_url", cfg.FrontendURL)
		for _, r := range handler.Routes {
			slog.Info("endpoint", "route", r.Pattern, "description", r.Description)
		}
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
