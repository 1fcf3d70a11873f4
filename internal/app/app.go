package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/memorable-quantities/internal/adapter/provider/deepseek"
	"github.com/heartmarshall/memorable-quantities/internal/config"
	"github.com/heartmarshall/memorable-quantities/internal/domain"
	"github.com/heartmarshall/memorable-quantities/internal/metrics"
	"github.com/heartmarshall/memorable-quantities/internal/service/chat"
	"github.com/heartmarshall/memorable-quantities/internal/service/memorable"
	"github.com/heartmarshall/memorable-quantities/internal/transport/middleware"
	"github.com/heartmarshall/memorable-quantities/internal/transport/rest"
)

// llmClient is the remote model capability shared by services and probes.
type llmClient interface {
	CreateChatCompletion(ctx context.Context, req domain.CompletionRequest) (*domain.Completion, error)
	StreamChatCompletion(ctx context.Context, req domain.CompletionRequest) (io.ReadCloser, error)
	Ping(ctx context.Context) error
	Model() string
	BaseURL() string
}

// Run is the application entry point. It loads configuration, builds the
// model client and HTTP stack, and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_base_url", cfg.LLM.BaseURL),
		slog.String("llm_model", cfg.LLM.Model),
		slog.Bool("metrics", cfg.Metrics.Enabled),
	)

	var (
		m   *metrics.Metrics
		reg *prometheus.Registry
		llm *deepseek.Client
	)
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
		m = metrics.New(reg)
		llm = deepseek.NewClient(cfg.LLM, m, logger)
	} else {
		llm = deepseek.NewClient(cfg.LLM, nil, logger)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHandler(cfg, logger, llm, m, reg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// newHandler wires services, handlers and middleware into the root handler.
// A nil m disables request metrics and the metrics endpoint.
func newHandler(cfg *config.Config, logger *slog.Logger, llm llmClient, m *metrics.Metrics, g prometheus.Gatherer) http.Handler {
	composer := memorable.NewComposer(domain.DefaultReferenceTable())

	chatSvc := chat.NewService(logger, llm)
	memorableSvc := memorable.NewService(logger, llm, composer)

	routes := rest.Routes{
		Chat:      rest.NewChatHandler(chatSvc, logger),
		Memorable: rest.NewMemorableHandler(memorableSvc, logger),
		Catalog:   rest.NewCatalogHandler(domain.Categories(), domain.Languages()),
		Health:    rest.NewHealthHandler(llm, BuildVersion()),
	}

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if m != nil {
		routes.Metrics = metrics.Handler(g)
		routes.MetricsPath = cfg.Metrics.Path
		// Innermost, so it sees the pattern matched by the mux.
		mws = append(mws, middleware.Metrics(m))
	}

	return middleware.Chain(mws...)(rest.NewRouter(routes))
}

// serve runs srv on ln until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
