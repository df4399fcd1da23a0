// Package simulator runs the tick loop that fabricates records for all seven
// domains and persists them through the storage write path.
package simulator

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"pulseboard/internal/generator"
	"pulseboard/internal/models"
	"pulseboard/internal/storage"
)

// Config holds simulator settings.
type Config struct {
	// Interval is the pause between ticks.
	Interval time.Duration
}

// Simulator drives the generators once per tick, in a fixed order, and
// writes every batch to storage as soon as it is produced. It owns the stock
// price book; nothing else reads or writes it.
type Simulator struct {
	gen    *generator.Generator
	store  storage.Storage
	book   *generator.PriceBook
	rng    *rand.Rand
	logger *slog.Logger
	cfg    Config
	tick   uint64
}

// New creates a Simulator with the provided dependencies. The RNG is
// injected so tests can seed it.
func New(gen *generator.Generator, store storage.Storage, rng *rand.Rand, logger *slog.Logger, cfg Config) *Simulator {
	return &Simulator{
		gen:    gen,
		store:  store,
		book:   gen.NewPriceBook(),
		rng:    rng,
		logger: logger,
		cfg:    cfg,
	}
}

// Run ticks immediately, then once per interval until the context is
// cancelled. Cancellation takes effect at the sleep boundary, never mid-tick.
func (s *Simulator) Run(ctx context.Context) error {
	s.logger.Info("starting simulation loop", "interval", s.cfg.Interval)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		s.Tick(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("simulation loop stopped", "ticks", s.tick)
			return nil
		case <-ticker.C:
		}
	}
}

// Tick generates and persists one batch for every domain. A failed insert is
// logged and the tick moves on to the next domain; the loop never aborts on
// store errors.
func (s *Simulator) Tick(ctx context.Context) {
	s.tick++
	total := 0

	persist := func(domain string, count int, err error) {
		if err != nil {
			s.logger.Error("persist failed", "domain", domain, "error", err)
			return
		}
		total += count
	}

	sensors := s.gen.Sensors(s.rng)
	persist("sensors", len(sensors), s.store.CreateSensorReadings(ctx, sensors))

	metric := s.gen.SystemSnapshot(s.rng)
	persist("system_metrics", 1, s.store.CreateSystemMetrics(ctx, []models.SystemMetric{metric}))

	quotes := s.gen.Stocks(s.rng, s.book)
	persist("stocks", len(quotes), s.store.CreateStockQuotes(ctx, quotes))

	weather := s.gen.Weather(s.rng)
	persist("weather", len(weather), s.store.CreateWeatherReadings(ctx, weather))

	orders := s.gen.Orders(s.rng)
	persist("ecommerce", len(orders), s.store.CreateEcommerceOrders(ctx, orders))

	posts := s.gen.SocialPosts(s.rng)
	persist("social_media", len(posts), s.store.CreateSocialPosts(ctx, posts))

	traffic := s.gen.Traffic(s.rng)
	persist("traffic", len(traffic), s.store.CreateTrafficSamples(ctx, traffic))

	s.logger.Info("tick complete", "tick", s.tick, "records", total)
}
