package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/clickhouse"
	"gorm.io/gorm"

	"pulseboard/configs"
	"pulseboard/internal/generator"
	"pulseboard/internal/handler"
	"pulseboard/internal/live"
	"pulseboard/internal/repository"
	"pulseboard/internal/router"
	"pulseboard/internal/service"
	"pulseboard/internal/simulator"
	"pulseboard/internal/storage"
	"pulseboard/migrations"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	migrateFlag := flag.Bool("migrate", false, "Run database migrations before serving")
	demoFlag := flag.Bool("demo", false, "Serve from an in-memory store fed by an embedded simulator (no ClickHouse needed)")
	flag.Parse()

	cfg := configs.AppLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo repository.Dashboard
	if *demoFlag {
		repo = startDemo(ctx, cfg, logger)
	} else {
		db, err := gorm.Open(clickhouse.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to ClickHouse")
		}
		if *migrateFlag {
			sqlDB, err := db.DB()
			if err != nil {
				logger.WithError(err).Fatal("failed to get sql.DB for migrations")
			}
			logger.Info("running database migrations")
			if err := migrations.Up(sqlDB); err != nil {
				logger.WithError(err).Fatal("migrations failed")
			}
		}
		repo = repository.NewGormDashboard(db)
	}

	svc := service.NewDashboardService(repo)

	feed := live.NewFeed(svc, logger, cfg.SimInterval)
	go feed.Run(ctx)

	engine := router.NewRouter(&router.Config{
		DashboardHandler: handler.NewDashboardHandler(svc, logger),
		LiveFeed:         feed,
		APIRateLimit:     cfg.APIRateLimit,
		APIBurst:         cfg.APIBurst,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("shutdown did not finish cleanly")
		}
	}()

	logger.WithField("port", cfg.ServerPort).Info("serving dashboard")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("server failed")
	}
	logger.Info("server shutdown complete")
}

// startDemo runs the simulation loop in-process over the in-memory store so
// the dashboard works without a ClickHouse instance.
func startDemo(ctx context.Context, cfg *configs.AppConfig, logger *logrus.Logger) repository.Dashboard {
	store := storage.NewMemoryStore()

	gen, err := generator.New(generator.DefaultConfig())
	if err != nil {
		logger.WithError(err).Fatal("invalid generator config")
	}

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>32))
	simLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	sim := simulator.New(gen, store, rng, simLogger, simulator.Config{
		Interval: cfg.SimInterval,
	})
	go sim.Run(ctx)

	logger.Info("demo mode: embedded simulator over in-memory store")
	return store
}
