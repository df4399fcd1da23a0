package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"pulseboard/internal/models"
)

// MemoryStore is an in-memory implementation of the write path that also
// serves the dashboard read queries (repository.Dashboard). It backs unit
// tests and the single-binary demo mode, where the simulator and the API
// share one process instead of a ClickHouse instance.
//
// Records are appended under a lock in arrival order; since the simulator is
// the only writer and timestamps are stamped here, slice order is creation
// order and newest-first reads walk the slices backwards.
type MemoryStore struct {
	mu       sync.RWMutex
	sensors  []models.SensorReading
	metrics  []models.SystemMetric
	stocks   []models.StockQuote
	weather  []models.WeatherReading
	orders   []models.EcommerceOrder
	posts    []models.SocialPost
	traffic  []models.TrafficSample
	lastSeen time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// stamp returns a creation timestamp that never moves backwards, so ordering
// within a domain stays well-defined even on coarse clocks.
func (s *MemoryStore) stamp() time.Time {
	now := time.Now()
	if !now.After(s.lastSeen) {
		now = s.lastSeen.Add(time.Microsecond)
	}
	s.lastSeen = now
	return now
}

func (s *MemoryStore) CreateSensorReadings(_ context.Context, readings []models.SensorReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	for _, r := range readings {
		r.Timestamp = now
		s.sensors = append(s.sensors, r)
	}
	return nil
}

func (s *MemoryStore) CreateSystemMetrics(_ context.Context, metrics []models.SystemMetric) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	for _, m := range metrics {
		m.Timestamp = now
		s.metrics = append(s.metrics, m)
	}
	return nil
}

func (s *MemoryStore) CreateStockQuotes(_ context.Context, quotes []models.StockQuote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	for _, q := range quotes {
		q.Timestamp = now
		s.stocks = append(s.stocks, q)
	}
	return nil
}

func (s *MemoryStore) CreateWeatherReadings(_ context.Context, readings []models.WeatherReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	for _, r := range readings {
		r.Timestamp = now
		s.weather = append(s.weather, r)
	}
	return nil
}

func (s *MemoryStore) CreateEcommerceOrders(_ context.Context, orders []models.EcommerceOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	for _, o := range orders {
		o.Timestamp = now
		s.orders = append(s.orders, o)
	}
	return nil
}

func (s *MemoryStore) CreateSocialPosts(_ context.Context, posts []models.SocialPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	for _, p := range posts {
		p.Timestamp = now
		s.posts = append(s.posts, p)
	}
	return nil
}

func (s *MemoryStore) CreateTrafficSamples(_ context.Context, samples []models.TrafficSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.stamp()
	for _, t := range samples {
		t.Timestamp = now
		s.traffic = append(s.traffic, t)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// newestFirst copies up to limit elements from the tail of rows, reversed,
// so the result is ordered by descending creation time.
func newestFirst[T any](rows []T, limit int) []T {
	if limit > len(rows) {
		limit = len(rows)
	}
	out := make([]T, 0, limit)
	for i := len(rows) - 1; i >= len(rows)-limit; i-- {
		out = append(out, rows[i])
	}
	return out
}

func (s *MemoryStore) LatestSensorReadings(_ context.Context, limit int) ([]models.SensorReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.sensors, limit), nil
}

func (s *MemoryStore) LatestSystemMetrics(_ context.Context, limit int) ([]models.SystemMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.metrics, limit), nil
}

func (s *MemoryStore) LatestStockQuotes(_ context.Context, limit int) ([]models.StockQuote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.stocks, limit), nil
}

func (s *MemoryStore) LatestWeatherReadings(_ context.Context, limit int) ([]models.WeatherReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.weather, limit), nil
}

func (s *MemoryStore) LatestEcommerceOrders(_ context.Context, limit int) ([]models.EcommerceOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.orders, limit), nil
}

func (s *MemoryStore) LatestSocialPosts(_ context.Context, limit int) ([]models.SocialPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.posts, limit), nil
}

func (s *MemoryStore) LatestTrafficSamples(_ context.Context, limit int) ([]models.TrafficSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.traffic, limit), nil
}

func (s *MemoryStore) SensorStats(_ context.Context) ([]models.SensorStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type sums struct {
		temp, humidity, pressure float64
		count                    int64
	}
	bySensor := make(map[string]*sums)
	order := make([]string, 0)
	for _, r := range s.sensors {
		agg, ok := bySensor[r.SensorID]
		if !ok {
			agg = &sums{}
			bySensor[r.SensorID] = agg
			order = append(order, r.SensorID)
		}
		agg.temp += r.Temperature
		agg.humidity += r.Humidity
		agg.pressure += r.Pressure
		agg.count++
	}

	stats := make([]models.SensorStat, 0, len(order))
	for _, id := range order {
		agg := bySensor[id]
		n := float64(agg.count)
		stats = append(stats, models.SensorStat{
			SensorID:    id,
			AvgTemp:     agg.temp / n,
			AvgHumidity: agg.humidity / n,
			AvgPressure: agg.pressure / n,
			Count:       agg.count,
		})
	}
	return stats, nil
}

func (s *MemoryStore) RevenueByCategory(_ context.Context) ([]models.CategoryRevenue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCategory := make(map[string]*models.CategoryRevenue)
	order := make([]string, 0)
	for _, o := range s.orders {
		rev, ok := byCategory[o.Category]
		if !ok {
			rev = &models.CategoryRevenue{Category: o.Category}
			byCategory[o.Category] = rev
			order = append(order, o.Category)
		}
		rev.TotalRevenue += o.Amount
		rev.TotalOrders++
	}

	revenues := make([]models.CategoryRevenue, 0, len(order))
	for _, category := range order {
		revenues = append(revenues, *byCategory[category])
	}
	sort.SliceStable(revenues, func(i, j int) bool {
		return revenues[i].TotalRevenue > revenues[j].TotalRevenue
	})
	return revenues, nil
}
