// Package generator produces synthetic telemetry records for the seven
// dashboard domains. Every generator draws from an injected *rand.Rand so a
// seeded source yields a reproducible record stream, and the draw order
// inside each generator is fixed.
package generator

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// StockSeed is a symbol with its starting price. Seeds are iterated in slice
// order so the random walk is deterministic under a seeded source.
type StockSeed struct {
	Symbol string
	Price  float64
}

// Config holds the fixed catalogs the generators draw from.
type Config struct {
	SensorIDs         []string
	Stocks            []StockSeed
	Cities            []string
	Conditions        []string
	Categories        []string
	Products          map[string][]string
	CustomerLocations []string
	Platforms         []string
	TrafficLocations  []string
}

// DefaultConfig returns the stock catalogs of the simulation: 4 sensors,
// 6 symbols, 5 cities, 6 product categories, 5 platforms, 5 road segments.
func DefaultConfig() Config {
	return Config{
		SensorIDs: []string{"SENSOR_001", "SENSOR_002", "SENSOR_003", "SENSOR_004"},
		Stocks: []StockSeed{
			{Symbol: "AAPL", Price: 150.00},
			{Symbol: "GOOGL", Price: 2800.00},
			{Symbol: "MSFT", Price: 300.00},
			{Symbol: "TSLA", Price: 700.00},
			{Symbol: "AMZN", Price: 3200.00},
			{Symbol: "META", Price: 280.00},
		},
		Cities:     []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"},
		Conditions: []string{"Sunny", "Cloudy", "Rainy", "Partly Cloudy", "Stormy"},
		Categories: []string{"Electronics", "Clothing", "Books", "Home & Kitchen", "Sports", "Toys"},
		Products: map[string][]string{
			"Electronics":    {"Laptop", "Smartphone", "Tablet", "Headphones", "Smart Watch"},
			"Clothing":       {"T-Shirt", "Jeans", "Jacket", "Shoes", "Hat"},
			"Books":          {"Fiction Novel", "Programming Book", "Biography", "Cook Book", "Self-Help"},
			"Home & Kitchen": {"Blender", "Coffee Maker", "Vacuum Cleaner", "Microwave", "Toaster"},
			"Sports":         {"Basketball", "Tennis Racket", "Yoga Mat", "Dumbbells", "Running Shoes"},
			"Toys":           {"Action Figure", "Board Game", "Puzzle", "RC Car", "Doll"},
		},
		CustomerLocations: []string{"California", "Texas", "New York", "Florida", "Illinois", "Washington"},
		Platforms:         []string{"Twitter", "Facebook", "Instagram", "LinkedIn", "TikTok"},
		TrafficLocations: []string{
			"Highway 101 North",
			"Downtown Main St",
			"Airport Freeway",
			"Broadway Ave",
			"Fifth Avenue",
		},
	}
}

// Validate rejects empty catalogs so a misconfigured simulator fails at
// startup instead of emitting nothing forever.
func (c Config) Validate() error {
	switch {
	case len(c.SensorIDs) == 0:
		return fmt.Errorf("generator config: no sensor IDs")
	case len(c.Stocks) == 0:
		return fmt.Errorf("generator config: no stock seeds")
	case len(c.Cities) == 0:
		return fmt.Errorf("generator config: no cities")
	case len(c.Conditions) == 0:
		return fmt.Errorf("generator config: no weather conditions")
	case len(c.Categories) == 0:
		return fmt.Errorf("generator config: no product categories")
	case len(c.CustomerLocations) == 0:
		return fmt.Errorf("generator config: no customer locations")
	case len(c.Platforms) == 0:
		return fmt.Errorf("generator config: no social platforms")
	case len(c.TrafficLocations) == 0:
		return fmt.Errorf("generator config: no traffic locations")
	}
	for _, category := range c.Categories {
		if len(c.Products[category]) == 0 {
			return fmt.Errorf("generator config: no products for category %q", category)
		}
	}
	return nil
}

// Generator fabricates records for all seven domains from a Config.
// It holds no mutable state; the stock price book is owned by the caller.
type Generator struct {
	cfg Config
}

// New validates the config and returns a Generator.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// NewPriceBook seeds a price book from the configured stock catalog.
func (g *Generator) NewPriceBook() *PriceBook {
	return NewPriceBook(g.cfg.Stocks)
}

const (
	orderIDDigits = "0123456789"
	postIDChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// round2 rounds half away from zero to 2 decimals. All generators share this
// rule; tests pin it down.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// round1 rounds half away from zero to 1 decimal.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intBetween draws an integer from [lo, hi] inclusive.
func intBetween(rng *rand.Rand, lo, hi int64) int64 {
	return lo + rng.Int64N(hi-lo+1)
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.IntN(len(options))]
}

func randomID(rng *rand.Rand, prefix, alphabet string, n int) string {
	buf := make([]byte, 0, len(prefix)+n)
	buf = append(buf, prefix...)
	for range n {
		buf = append(buf, alphabet[rng.IntN(len(alphabet))])
	}
	return string(buf)
}
