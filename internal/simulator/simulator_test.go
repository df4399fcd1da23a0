package simulator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"pulseboard/internal/generator"
	"pulseboard/internal/models"
	"pulseboard/internal/storage"
)

func newTestSimulator(t *testing.T, store storage.Storage) *Simulator {
	t.Helper()
	gen, err := generator.New(generator.DefaultConfig())
	if err != nil {
		t.Fatalf("generator.New failed: %v", err)
	}
	rng := rand.New(rand.NewPCG(1, 2))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(gen, store, rng, logger, Config{Interval: time.Millisecond})
}

func TestTickRecordCounts(t *testing.T) {
	store := storage.NewMemoryStore()
	sim := newTestSimulator(t, store)
	ctx := context.Background()

	sim.Tick(ctx)

	sensors, _ := store.LatestSensorReadings(ctx, 100)
	if len(sensors) != 4 {
		t.Errorf("expected 4 sensor readings, got %d", len(sensors))
	}
	metrics, _ := store.LatestSystemMetrics(ctx, 100)
	if len(metrics) != 1 {
		t.Errorf("expected 1 system metric, got %d", len(metrics))
	}
	stocks, _ := store.LatestStockQuotes(ctx, 100)
	if len(stocks) != 6 {
		t.Errorf("expected 6 stock quotes, got %d", len(stocks))
	}
	weather, _ := store.LatestWeatherReadings(ctx, 100)
	if len(weather) != 5 {
		t.Errorf("expected 5 weather readings, got %d", len(weather))
	}
	orders, _ := store.LatestEcommerceOrders(ctx, 100)
	if len(orders) < 2 || len(orders) > 4 {
		t.Errorf("expected 2-4 orders, got %d", len(orders))
	}
	posts, _ := store.LatestSocialPosts(ctx, 100)
	if len(posts) != 5 {
		t.Errorf("expected 5 social posts, got %d", len(posts))
	}
	traffic, _ := store.LatestTrafficSamples(ctx, 100)
	if len(traffic) != 5 {
		t.Errorf("expected 5 traffic samples, got %d", len(traffic))
	}

	total := len(sensors) + len(metrics) + len(stocks) + len(weather) +
		len(orders) + len(posts) + len(traffic)
	if total < 28 || total > 30 {
		t.Errorf("expected 28-30 records per tick, got %d", total)
	}
}

func TestStockPricesCarryAcrossTicks(t *testing.T) {
	store := storage.NewMemoryStore()
	sim := newTestSimulator(t, store)
	ctx := context.Background()

	sim.Tick(ctx)
	sim.Tick(ctx)

	quotes, _ := store.LatestStockQuotes(ctx, 100)
	if len(quotes) != 12 {
		t.Fatalf("expected 12 quotes after 2 ticks, got %d", len(quotes))
	}

	// Newest first: the first 6 are tick 2, the last 6 tick 1. Each tick-2
	// price must differ from its tick-1 price by at most the 10-unit bound
	// plus rounding.
	byTick1 := map[string]float64{}
	for _, q := range quotes[6:] {
		byTick1[q.Symbol] = q.Price
	}
	for _, q := range quotes[:6] {
		prev, ok := byTick1[q.Symbol]
		if !ok {
			t.Fatalf("symbol %s missing from first tick", q.Symbol)
		}
		delta := q.Price - prev
		if delta < -10.01 || delta > 10.01 {
			t.Errorf("%s moved by %v between ticks, beyond the ±10 bound", q.Symbol, delta)
		}
	}
}

// failingStorage rejects stock inserts and counts the batches it accepted.
type failingStorage struct {
	*storage.MemoryStore
}

func (f *failingStorage) CreateStockQuotes(context.Context, []models.StockQuote) error {
	return errors.New("store unavailable")
}

func TestTickContinuesPastInsertFailure(t *testing.T) {
	store := &failingStorage{MemoryStore: storage.NewMemoryStore()}
	sim := newTestSimulator(t, store)
	ctx := context.Background()

	sim.Tick(ctx)

	// Stocks failed, but the domains after it in tick order still persisted.
	traffic, _ := store.LatestTrafficSamples(ctx, 100)
	if len(traffic) != 5 {
		t.Errorf("expected traffic to persist despite stock failure, got %d samples", len(traffic))
	}
	posts, _ := store.LatestSocialPosts(ctx, 100)
	if len(posts) != 5 {
		t.Errorf("expected social posts to persist despite stock failure, got %d", len(posts))
	}
	stocks, _ := store.LatestStockQuotes(ctx, 100)
	if len(stocks) != 0 {
		t.Errorf("expected no stock quotes, got %d", len(stocks))
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	store := storage.NewMemoryStore()
	sim := newTestSimulator(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sim.Run(ctx)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error on cancel: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	sensors, _ := store.LatestSensorReadings(context.Background(), 1000)
	if len(sensors) == 0 {
		t.Error("expected at least one tick to have run")
	}
}
