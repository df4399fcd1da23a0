// Package repository provides the read path of the dashboard: latest-N
// queries and the two grouped aggregates.
package repository

import (
	"context"

	"gorm.io/gorm"

	"pulseboard/internal/models"
)

// Dashboard exposes the queries the API serves. Latest* methods return at
// most limit records ordered newest first; all methods yield empty slices on
// an empty store rather than an error.
type Dashboard interface {
	LatestSensorReadings(ctx context.Context, limit int) ([]models.SensorReading, error)
	LatestSystemMetrics(ctx context.Context, limit int) ([]models.SystemMetric, error)
	LatestStockQuotes(ctx context.Context, limit int) ([]models.StockQuote, error)
	LatestWeatherReadings(ctx context.Context, limit int) ([]models.WeatherReading, error)
	LatestEcommerceOrders(ctx context.Context, limit int) ([]models.EcommerceOrder, error)
	LatestSocialPosts(ctx context.Context, limit int) ([]models.SocialPost, error)
	LatestTrafficSamples(ctx context.Context, limit int) ([]models.TrafficSample, error)

	// SensorStats groups all sensor readings by sensor and averages
	// temperature, humidity and pressure. Group order is unspecified.
	SensorStats(ctx context.Context) ([]models.SensorStat, error)

	// RevenueByCategory groups all orders by category, summing amounts,
	// sorted descending by total revenue.
	RevenueByCategory(ctx context.Context) ([]models.CategoryRevenue, error)
}

type gormDashboard struct {
	db *gorm.DB
}

// NewGormDashboard wraps a gorm ClickHouse handle in the Dashboard interface.
func NewGormDashboard(db *gorm.DB) Dashboard {
	return &gormDashboard{db: db}
}

func latest[T any](ctx context.Context, db *gorm.DB, limit int) ([]T, error) {
	rows := make([]T, 0, limit)
	err := db.WithContext(ctx).
		Order("timestamp desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormDashboard) LatestSensorReadings(ctx context.Context, limit int) ([]models.SensorReading, error) {
	return latest[models.SensorReading](ctx, r.db, limit)
}

func (r *gormDashboard) LatestSystemMetrics(ctx context.Context, limit int) ([]models.SystemMetric, error) {
	return latest[models.SystemMetric](ctx, r.db, limit)
}

func (r *gormDashboard) LatestStockQuotes(ctx context.Context, limit int) ([]models.StockQuote, error) {
	return latest[models.StockQuote](ctx, r.db, limit)
}

func (r *gormDashboard) LatestWeatherReadings(ctx context.Context, limit int) ([]models.WeatherReading, error) {
	return latest[models.WeatherReading](ctx, r.db, limit)
}

func (r *gormDashboard) LatestEcommerceOrders(ctx context.Context, limit int) ([]models.EcommerceOrder, error) {
	return latest[models.EcommerceOrder](ctx, r.db, limit)
}

func (r *gormDashboard) LatestSocialPosts(ctx context.Context, limit int) ([]models.SocialPost, error) {
	return latest[models.SocialPost](ctx, r.db, limit)
}

func (r *gormDashboard) LatestTrafficSamples(ctx context.Context, limit int) ([]models.TrafficSample, error) {
	return latest[models.TrafficSample](ctx, r.db, limit)
}

func (r *gormDashboard) SensorStats(ctx context.Context) ([]models.SensorStat, error) {
	stats := make([]models.SensorStat, 0)
	err := r.db.WithContext(ctx).
		Model(&models.SensorReading{}).
		Select("sensor_id, avg(temperature) as avg_temp, avg(humidity) as avg_humidity, avg(pressure) as avg_pressure, toInt64(count(*)) as count").
		Group("sensor_id").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *gormDashboard) RevenueByCategory(ctx context.Context) ([]models.CategoryRevenue, error) {
	revenues := make([]models.CategoryRevenue, 0)
	err := r.db.WithContext(ctx).
		Model(&models.EcommerceOrder{}).
		Select("category, sum(amount) as total_revenue, toInt64(count(*)) as total_orders").
		Group("category").
		Order("total_revenue desc").
		Scan(&revenues).Error
	if err != nil {
		return nil, err
	}
	return revenues, nil
}
