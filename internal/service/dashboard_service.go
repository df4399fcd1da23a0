// Package service projects the record store into the two dashboard views:
// the combined latest-records payload and the analytics aggregates.
package service

import (
	"context"
	"fmt"
	"math"

	"pulseboard/internal/models"
	"pulseboard/internal/repository"
)

// Per-domain fetch depths for the combined payload.
const (
	sensorLimit  = 20
	metricLimit  = 20
	stockLimit   = 30
	weatherLimit = 25
	orderLimit   = 20
	socialLimit  = 25
	trafficLimit = 25
)

// AllData is the wire shape of GET /api/all-data/. Every array is newest
// first; timestamps marshal as RFC 3339 strings.
type AllData struct {
	Sensors       []models.SensorReading  `json:"sensors"`
	SystemMetrics []models.SystemMetric   `json:"system_metrics"`
	Stocks        []models.StockQuote     `json:"stocks"`
	Weather       []models.WeatherReading `json:"weather"`
	Ecommerce     []models.EcommerceOrder `json:"ecommerce"`
	SocialMedia   []models.SocialPost     `json:"social_media"`
	Traffic       []models.TrafficSample  `json:"traffic"`
}

// Analytics is the wire shape of GET /api/analytics/.
type Analytics struct {
	SensorStats       []models.SensorStat      `json:"sensor_stats"`
	RevenueByCategory []models.CategoryRevenue `json:"revenue_by_category"`
}

// DashboardService answers the read-only dashboard queries.
type DashboardService struct {
	repo repository.Dashboard
}

// NewDashboardService wraps a repository in the query API.
func NewDashboardService(repo repository.Dashboard) *DashboardService {
	return &DashboardService{repo: repo}
}

// AllData fetches the most recent records of every domain. An empty store
// yields empty arrays, never an error.
func (s *DashboardService) AllData(ctx context.Context) (*AllData, error) {
	var (
		data AllData
		err  error
	)

	if data.Sensors, err = s.repo.LatestSensorReadings(ctx, sensorLimit); err != nil {
		return nil, fmt.Errorf("sensors: %w", err)
	}
	if data.SystemMetrics, err = s.repo.LatestSystemMetrics(ctx, metricLimit); err != nil {
		return nil, fmt.Errorf("system metrics: %w", err)
	}
	if data.Stocks, err = s.repo.LatestStockQuotes(ctx, stockLimit); err != nil {
		return nil, fmt.Errorf("stocks: %w", err)
	}
	if data.Weather, err = s.repo.LatestWeatherReadings(ctx, weatherLimit); err != nil {
		return nil, fmt.Errorf("weather: %w", err)
	}
	if data.Ecommerce, err = s.repo.LatestEcommerceOrders(ctx, orderLimit); err != nil {
		return nil, fmt.Errorf("ecommerce: %w", err)
	}
	if data.SocialMedia, err = s.repo.LatestSocialPosts(ctx, socialLimit); err != nil {
		return nil, fmt.Errorf("social media: %w", err)
	}
	if data.Traffic, err = s.repo.LatestTrafficSamples(ctx, trafficLimit); err != nil {
		return nil, fmt.Errorf("traffic: %w", err)
	}
	return &data, nil
}

// Analytics runs the two grouped aggregates. Averages and revenue totals are
// rounded to 2 decimals for display.
func (s *DashboardService) Analytics(ctx context.Context) (*Analytics, error) {
	stats, err := s.repo.SensorStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("sensor stats: %w", err)
	}
	for i := range stats {
		stats[i].AvgTemp = round2(stats[i].AvgTemp)
		stats[i].AvgHumidity = round2(stats[i].AvgHumidity)
		stats[i].AvgPressure = round2(stats[i].AvgPressure)
	}

	revenues, err := s.repo.RevenueByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue by category: %w", err)
	}
	for i := range revenues {
		revenues[i].TotalRevenue = round2(revenues[i].TotalRevenue)
	}

	return &Analytics{SensorStats: stats, RevenueByCategory: revenues}, nil
}

// round2 rounds half away from zero to 2 decimals, the same rule the
// generators use.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
