package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flight-time-overlay/internal/domain/entity"
	"flight-time-overlay/internal/domain/repository"
	"flight-time-overlay/internal/infrastructure/config"
	"flight-time-overlay/internal/infrastructure/persistence"
	"flight-time-overlay/internal/interface/httpapi"
	repoimpl "flight-time-overlay/internal/interface/repository"
	"flight-time-overlay/internal/usecase"
	"flight-time-overlay/pkg/logger"
	"flight-time-overlay/pkg/metrics"
	"flight-time-overlay/pkg/offsettable"
	"flight-time-overlay/pkg/timeconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger(false).Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.DebugLogging)
	defer log.Sync()
	log.Info("Starting Flight Time Overlay", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build the offset table once; everything below gets it injected
	entries, err := loadOffsetEntries(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to load offset table", "source", cfg.OffsetSource, "error", err)
	}
	for _, issue := range offsettable.Validate(entries) {
		log.Warn("Offset table data issue", "kind", issue.Kind, "code", issue.Code, "detail", issue.Message)
	}
	table := offsettable.New(entries)
	log.Info("Offset table ready", "source", cfg.OffsetSource, "codes", table.Len())

	// Optional audit trail
	var recordRepo repository.ConversionRecordRepository
	var mongoClient *mongo.Client
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		client, db, err := persistence.NewMongoDatabase(ctx, persistence.MongoSettings{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDB,
			Username: cfg.MongoUser,
			Password: cfg.MongoPassword,
			AppName:  "flight-time-overlay",
		})
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		mongoClient = client

		recordRepo, err = repoimpl.NewMongoConversionRecordRepository(ctx, db)
		if err != nil {
			log.Fatal("Failed to set up conversion records", "error", err)
		}
	}

	policy := timeconv.SuppressEquivalent
	if cfg.RenderEquivalentLabel {
		policy = timeconv.RenderEquivalentLabel
	}

	m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)
	overlay := usecase.NewOverlayService(
		table,
		timeconv.Settings{
			TargetLabel:      cfg.TargetLabel,
			EquivalentPolicy: policy,
			EquivalentMarker: cfg.EquivalentMarker,
		},
		usecase.OverlaySettings{Enabled: cfg.Enabled, Debug: cfg.DebugLogging},
		recordRepo,
		m,
		log,
	)

	// Set up HTTP server
	mux := http.NewServeMux()
	httpapi.NewHandler(overlay, log).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Flight Time Overlay stopped")
}

// loadOffsetEntries returns the declarations the table is built from
func loadOffsetEntries(ctx context.Context, cfg *config.Config, log logger.Logger) ([]entity.AirportOffset, error) {
	if cfg.OffsetSource != config.OffsetSourcePostgres {
		return offsettable.DefaultEntries(), nil
	}

	log.Info("Connecting to PostgreSQL")
	db, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		return nil, err
	}

	return entriesFromRepository(ctx, repoimpl.NewGormOffsetRepository(db), cfg.SeedOffsets, log)
}

var errEmptyOffsetTable = errors.New("offset table is empty; set SEED_OFFSETS=true to load the built-in data")

// entriesFromRepository optionally seeds the store, then reads it back
func entriesFromRepository(ctx context.Context, offsetRepository repository.OffsetRepository, seed bool, log logger.Logger) ([]entity.AirportOffset, error) {
	if seed {
		log.Info("Seeding offset table from built-in data")
		if err := offsetRepository.Seed(ctx, offsettable.DefaultEntries()); err != nil {
			return nil, err
		}
	}

	entries, err := offsetRepository.ListOffsets(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errEmptyOffsetTable
	}
	return entries, nil
}
