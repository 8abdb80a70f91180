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

	"github.com/couchcryptid/storm-harm-report/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/storm-harm-report/internal/adapter/kafka"
	"github.com/couchcryptid/storm-harm-report/internal/config"
	"github.com/couchcryptid/storm-harm-report/internal/loader"
	"github.com/couchcryptid/storm-harm-report/internal/observability"
	"github.com/couchcryptid/storm-harm-report/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	store := report.NewStore()
	srv := httpadapter.NewServer(cfg.HTTPAddr, store, logger)

	// Report publishing is feature-flagged via KAFKA_ENABLED.
	var publisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		publisher = kafkaadapter.NewPublisher(cfg, logger)
		logger.Info("kafka report publishing enabled", "topic", cfg.KafkaReportTopic)
	} else {
		logger.Info("kafka report publishing disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Load the dataset and build the report.
	go func() {
		if err := buildReport(ctx, cfg, logger, metrics, store, publisher); err != nil {
			logger.Error("report build error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// buildReport runs the load-normalize-aggregate-rank cycle once, stores
// the result for the HTTP server, and publishes it if Kafka is enabled.
func buildReport(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, store *report.Store, publisher *kafkaadapter.Publisher) error {
	start := time.Now()

	result, err := loader.New(logger).LoadFile(cfg.CSVPath)
	if err != nil {
		return err
	}
	metrics.RecordsLoaded.Add(float64(len(result.Records)))
	metrics.RowsSkipped.Add(float64(result.Skipped))
	metrics.DatasetRecords.Set(float64(len(result.Records)))

	rep, err := report.Build(result.Records, cfg.TopN)
	if err != nil {
		return err
	}
	metrics.ReportBuilds.Inc()
	metrics.ReportBuildDuration.Observe(time.Since(start).Seconds())

	store.Set(rep)
	logger.Info("report built",
		"records", len(result.Records),
		"skipped", result.Skipped,
		"top_n", cfg.TopN,
		"duration", time.Since(start),
	)

	if publisher != nil {
		if err := publisher.PublishReport(ctx, rep); err != nil {
			return err
		}
		metrics.ReportsPublished.Add(float64(len(rep.Lists())))
		logger.Info("report published", "topic", cfg.KafkaReportTopic)
	}

	return nil
}
