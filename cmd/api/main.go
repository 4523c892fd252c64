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

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"solsite/api"
	"solsite/article"
	"solsite/auth"
	"solsite/config"
	"solsite/contact"
	"solsite/db"
	"solsite/event"
	"solsite/feedback"
	"solsite/job"
	"solsite/metrics"
	"solsite/solution"
	"solsite/upload"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		return err
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	store, err := upload.NewS3Store(ctx, upload.S3Config{
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		BaseEndpoint:  cfg.S3BaseEndpoint,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	if err != nil {
		return err
	}
	pipeline := upload.NewPipeline(store, cfg.MaxUploadBytes)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	server := api.NewServer(api.ServerConfig{
		Logger:            logger,
		Metrics:           collector,
		Gatherer:          registry,
		Auth:              auth.NewService(auth.NewRepository(pool), cfg.JWTSecret, cfg.TokenTTL),
		Articles:          article.NewService(article.NewRepository(pool)),
		Solutions:         solution.NewService(solution.NewRepository(pool)),
		Feedback:          feedback.NewService(feedback.NewRepository(pool)),
		Contact:           contact.NewService(contact.NewRepository(pool)),
		Events:            event.NewService(event.NewRepository(pool)),
		Jobs:              job.NewService(job.NewRepository(pool), pipeline),
		MaxUploadBytes:    cfg.MaxUploadBytes,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
