package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/defter/internal/auth"
	"github.com/mmynk/defter/internal/config"
	"github.com/mmynk/defter/internal/metrics"
	"github.com/mmynk/defter/internal/middleware"
	"github.com/mmynk/defter/internal/service"
	"github.com/mmynk/defter/internal/storage/sqlite"
	"github.com/mmynk/defter/pkg/api/defterv1/defterv1connect"
	"github.com/mmynk/defter/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := logging.SetupWithLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	settlement := cfg.Settlement()

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	// Outermost first: logging runs inside auth so the caller is known.
	interceptors := []connect.Interceptor{
		middleware.RequireAuth(jwtManager,
			defterv1connect.AuthServiceRegisterProcedure,
			defterv1connect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(logger),
	}
	if m != nil {
		interceptors = append([]connect.Interceptor{m.Interceptor()}, interceptors...)
	}
	opts := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()
	mux.Handle(defterv1connect.NewAuthServiceHandler(service.NewAuthService(authenticator, jwtManager, store, logger), opts))
	mux.Handle(defterv1connect.NewGroupServiceHandler(service.NewGroupService(store, logger), opts))
	mux.Handle(defterv1connect.NewPurchaseServiceHandler(service.NewPurchaseService(store, settlement, logger), opts))
	mux.Handle(defterv1connect.NewPaymentServiceHandler(service.NewPaymentService(store, m, logger), opts))
	mux.Handle(defterv1connect.NewSettlementServiceHandler(service.NewSettlementService(store, settlement, m, logger), opts))
	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// h2c for HTTP/2 without TLS
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Connect server starting",
			"address", srv.Addr,
			"min_transfer", settlement.MinTransfer.String(),
			"trust_split_sum", settlement.TrustSplitSum,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
