package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Denniskaninu/chama-smart-sync/internal/auth"
	"github.com/Denniskaninu/chama-smart-sync/internal/config"
	"github.com/Denniskaninu/chama-smart-sync/internal/ledger"
	"github.com/Denniskaninu/chama-smart-sync/internal/live"
	"github.com/Denniskaninu/chama-smart-sync/internal/models"
	"github.com/Denniskaninu/chama-smart-sync/internal/notify"
	"github.com/Denniskaninu/chama-smart-sync/internal/refcheck"
	"github.com/Denniskaninu/chama-smart-sync/internal/service"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage/postgres"
	"github.com/Denniskaninu/chama-smart-sync/internal/storage/sqlite"
	"github.com/Denniskaninu/chama-smart-sync/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.DB.Driver, "database", config.MaskURL(cfg.DB.URL))

	hub := live.NewHub(cfg.Live.Buffer)
	l := ledger.New(store, hub,
		ledger.WithBalancePolicy(cfg.Loan.EnforceBalance),
		ledger.WithApprovalHook(func(ctx context.Context, loan *models.Loan, group *models.Group) {
			slog.Info("Loan approved", "loan_id", loan.ID, "group_id", group.ID, "amount", loan.Amount)
		}),
	)

	bus := notify.NewBus(logger)
	bus.Register(func(ctx context.Context, n notify.Notice) {
		slog.Warn("Write rejected",
			"procedure", n.Procedure,
			"user_id", n.UserID,
			"path", n.Path,
			"operation", n.Operation,
		)
	})

	mux := http.NewServeMux()
	service.Mount(mux, service.Deps{
		Ledger:        l,
		Checker:       newChecker(cfg.RefCheck, logger),
		Bus:           bus,
		Authenticator: auth.NewPasswordAuthenticator(store),
		JWT:           auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry),
		Users:         store,
		Logger:        logger,
		CheckRate:     cfg.RefCheck.RatePerSecond,
		CheckBurst:    cfg.RefCheck.Burst,
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(loggedHandler, &http2.Server{})

	// Streams watch the base context so WatchGroup calls end on shutdown.
	baseCtx, cancelStreams := context.WithCancel(context.Background())
	defer cancelStreams()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "env", cfg.Env, "url", fmt.Sprintf("http://localhost%s", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.Server.ShutdownTimeout)
	cancelStreams()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

// openStore opens the configured backend. Postgres may still be starting
// when the server boots, so connecting is retried until ConnectTimeout.
func openStore(ctx context.Context, db config.DBConfig) (storage.Store, error) {
	if db.Driver == "sqlite" {
		return sqlite.New(db.URL)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = db.ConnectTimeout

	var store *postgres.Store
	connect := func() error {
		attemptCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		s, err := postgres.New(attemptCtx, db.URL)
		if err != nil {
			return err
		}
		store = s
		return nil
	}
	onRetry := func(err error, wait time.Duration) {
		slog.Warn("Database not ready, retrying", "error", err, "wait", wait)
	}
	if err := backoff.RetryNotify(connect, backoff.WithContext(b, ctx), onRetry); err != nil {
		return nil, err
	}
	return store, nil
}

func newChecker(cfg config.RefCheckConfig, logger *slog.Logger) *refcheck.Checker {
	var classifier refcheck.Classifier = refcheck.HeuristicClassifier{}
	if cfg.Endpoint != "" {
		classifier = refcheck.NewHTTPClassifier(cfg.Endpoint, cleanhttp.DefaultPooledClient())
		slog.Info("Reference checks use remote classifier", "endpoint", config.MaskURL(cfg.Endpoint))
	}
	return refcheck.NewChecker(classifier,
		refcheck.WithMinLength(cfg.MinLength),
		refcheck.WithTimeout(cfg.Timeout),
		refcheck.WithLogger(logger),
	)
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
