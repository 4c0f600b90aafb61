// Package app assembles the service: configuration, logging, storage,
// provider adapters, services, transport, and server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/scholarstream/scholarstream-backend/internal/adapter/postgres"
	applicationrepo "github.com/scholarstream/scholarstream-backend/internal/adapter/postgres/application"
	reviewrepo "github.com/scholarstream/scholarstream-backend/internal/adapter/postgres/review"
	scholarshiprepo "github.com/scholarstream/scholarstream-backend/internal/adapter/postgres/scholarship"
	userrepo "github.com/scholarstream/scholarstream-backend/internal/adapter/postgres/user"
	"github.com/scholarstream/scholarstream-backend/internal/adapter/provider/checkout"
	"github.com/scholarstream/scholarstream-backend/internal/adapter/provider/idtoken"
	"github.com/scholarstream/scholarstream-backend/internal/config"
	applicationsvc "github.com/scholarstream/scholarstream-backend/internal/service/application"
	paymentsvc "github.com/scholarstream/scholarstream-backend/internal/service/payment"
	reviewsvc "github.com/scholarstream/scholarstream-backend/internal/service/review"
	scholarshipsvc "github.com/scholarstream/scholarstream-backend/internal/service/scholarship"
	usersvc "github.com/scholarstream/scholarstream-backend/internal/service/user"
	"github.com/scholarstream/scholarstream-backend/internal/transport/rest"
)

// Run starts the service and blocks until ctx is cancelled, then shuts the
// HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := NewLogger(cfg.Log)
	log.Info("starting", slog.String("version", Version))

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	scholarships := scholarshiprepo.New(pool)
	applications := applicationrepo.New(pool)
	reviews := reviewrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	verifier := idtoken.NewVerifier(cfg.Identity, log)
	checkoutClient := checkout.NewClient(cfg.Payment, log)

	userService := usersvc.NewService(log, users)
	scholarshipService := scholarshipsvc.NewService(log, scholarships)
	applicationService := applicationsvc.NewService(log, applications, users, txManager)
	paymentService := paymentsvc.NewService(log, checkoutClient, applications, cfg.Payment)
	reviewService := reviewsvc.NewService(log, reviews, users)

	router := rest.NewRouter(log, cfg.CORS, verifier, userService, rest.Handlers{
		Health:       rest.NewHealthHandler(pool, Version),
		Users:        rest.NewUserHandler(log, userService),
		Scholarships: rest.NewScholarshipHandler(log, scholarshipService),
		Applications: rest.NewApplicationHandler(log, applicationService),
		Reviews:      rest.NewReviewHandler(log, reviewService),
		Payments:     rest.NewPaymentHandler(log, paymentService),
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("stopped")
	return nil
}
