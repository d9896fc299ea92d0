package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/safedocs/seeder/internal/api"
	"github.com/safedocs/seeder/internal/config"
	"github.com/safedocs/seeder/internal/db"
	"github.com/safedocs/seeder/internal/generator"
	"github.com/safedocs/seeder/pkg/logger"
	"github.com/safedocs/seeder/pkg/metrics"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file (defaults apply when omitted)")
	seed := flag.Int64("seed", 0, "random seed override; 0 seeds from the current time")
	serve := flag.Bool("serve", false, "keep running and serve the dataset preview API after loading")
	flag.Parse()

	var cfg *config.Configuration
	var err error
	if *configPath != "" {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	} else {
		cfg = config.InitializeDefaultConfig()
	}
	if *seed != 0 {
		cfg.Dataset.Seed = *seed
	}

	zapLogger, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	config.LogConfig(zapLogger)

	database, err := db.Initialize(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to initialize database", zap.Error(err))
	}

	collector := metrics.NewMetricsCollector()

	gen := generator.New(generator.Config{
		Organizations: cfg.Dataset.Organizations,
		Users:         cfg.Dataset.Users,
		Documents:     cfg.Dataset.Documents,
	}, cfg.Dataset.Seed, time.Now(), zapLogger, collector)

	dataset := gen.Generate()

	loader := db.NewLoader(database, zapLogger)
	results := loader.Load(dataset)

	failures := 0
	for _, result := range results {
		if result.Err != nil {
			failures++
		}
	}
	if failures > 0 {
		zapLogger.Warn("Seeding finished with failures",
			zap.Int("tables", len(results)),
			zap.Int("failed", failures))
	} else {
		zapLogger.Info("Seeding completed successfully",
			zap.Int("tables", len(results)))
	}

	if !*serve {
		closeDatabase(zapLogger)
		if failures > 0 {
			os.Exit(1)
		}
		return
	}

	router := api.NewRouter(zapLogger, collector, database)
	router.SetupRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Port
	}
	go func() {
		if err := router.Run(":" + port); err != nil {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()
	zapLogger.Info("Preview server started", zap.String("port", port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down...")

	closeDatabase(zapLogger)
	zapLogger.Info("Seeder stopped")
}

func closeDatabase(zapLogger *zap.Logger) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		zapLogger.Warn("Failed to access underlying connection", zap.Error(err))
		return
	}
	sqlDB.Close()
}
