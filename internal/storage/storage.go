// Package storage provides the write path for simulated telemetry records.
package storage

import (
	"context"

	"pulseboard/internal/models"
)

// Storage is the append-only sink the simulation loop writes through.
// Each Create call persists one generator's batch for the current tick and
// stamps every record's creation timestamp. Implementations must be safe for
// concurrent use.
type Storage interface {
	CreateSensorReadings(ctx context.Context, readings []models.SensorReading) error
	CreateSystemMetrics(ctx context.Context, metrics []models.SystemMetric) error
	CreateStockQuotes(ctx context.Context, quotes []models.StockQuote) error
	CreateWeatherReadings(ctx context.Context, readings []models.WeatherReading) error
	CreateEcommerceOrders(ctx context.Context, orders []models.EcommerceOrder) error
	CreateSocialPosts(ctx context.Context, posts []models.SocialPost) error
	CreateTrafficSamples(ctx context.Context, samples []models.TrafficSample) error

	// Close releases backend connection resources.
	Close() error
}
