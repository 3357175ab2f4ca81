package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/axrail/quotation-processor/internal/adapters/http"
	"github.com/axrail/quotation-processor/internal/bootstrap"
	"github.com/axrail/quotation-processor/internal/config"
	"github.com/axrail/quotation-processor/internal/observability/logging"
	"github.com/axrail/quotation-processor/internal/observability/metrics"
)

const serviceName = "quotation-processor"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, serviceName, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	serverMetrics := metrics.NewHTTPServerMetrics(serviceName)
	router := httpadapter.NewRouter(app.Processor, serverMetrics, logger)

	mux := http.NewServeMux()
	mux.Handle("/metrics", serverMetrics.Handler())
	mux.Handle("/", router.Handler())

	handler := httpadapter.RequestIDMiddleware(
		httpadapter.AccessLogMiddleware(
			httpadapter.RateLimitMiddleware(
				serverMetrics.Middleware(serviceName, mux),
				cfg.APIRateLimitRPS,
				cfg.APIRateLimitBurst,
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      handler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api_listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("api server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api_shutdown_error", "error", err)
	}
}
