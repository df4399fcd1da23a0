package storage

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"pulseboard/internal/models"
)

// clickhouseStorage implements Storage using the native ClickHouse driver.
// Each generator batch becomes one batch insert; all records in a batch
// share the same creation timestamp.
type clickhouseStorage struct {
	conn driver.Conn
}

// NewClickHouseStorage opens a ClickHouse connection from a DSN and verifies
// connectivity with a ping. Returns an error if the backend is unreachable
// within 5 seconds; callers treat that as fatal at startup.
func NewClickHouseStorage(dsn string) (Storage, error) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.Ping(ctx); err != nil {
		return nil, err
	}

	return &clickhouseStorage{conn: conn}, nil
}

func (s *clickhouseStorage) CreateSensorReadings(ctx context.Context, readings []models.SensorReading) error {
	if len(readings) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO sensor_readings (
			sensor_id, temperature, humidity, pressure, status, timestamp
		)
	`)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, r := range readings {
		if err := batch.Append(r.SensorID, r.Temperature, r.Humidity, r.Pressure, r.Status, now); err != nil {
			return err
		}
	}
	return batch.Send()
}

func (s *clickhouseStorage) CreateSystemMetrics(ctx context.Context, metrics []models.SystemMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO system_metrics (
			cpu_usage, memory_usage, disk_usage, network_in, network_out, timestamp
		)
	`)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, m := range metrics {
		if err := batch.Append(m.CPUUsage, m.MemoryUsage, m.DiskUsage, m.NetworkIn, m.NetworkOut, now); err != nil {
			return err
		}
	}
	return batch.Send()
}

func (s *clickhouseStorage) CreateStockQuotes(ctx context.Context, quotes []models.StockQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO stock_quotes (
			symbol, price, volume, change_percent, market_cap, timestamp
		)
	`)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, q := range quotes {
		if err := batch.Append(q.Symbol, q.Price, q.Volume, q.ChangePercent, q.MarketCap, now); err != nil {
			return err
		}
	}
	return batch.Send()
}

func (s *clickhouseStorage) CreateWeatherReadings(ctx context.Context, readings []models.WeatherReading) error {
	if len(readings) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO weather_readings (
			city, temperature, humidity, wind_speed, condition, pressure, timestamp
		)
	`)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, r := range readings {
		if err := batch.Append(r.City, r.Temperature, r.Humidity, r.WindSpeed, r.Condition, r.Pressure, now); err != nil {
			return err
		}
	}
	return batch.Send()
}

func (s *clickhouseStorage) CreateEcommerceOrders(ctx context.Context, orders []models.EcommerceOrder) error {
	if len(orders) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO ecommerce_orders (
			order_id, product_name, category, amount, quantity, customer_location, timestamp
		)
	`)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, o := range orders {
		if err := batch.Append(o.OrderID, o.ProductName, o.Category, o.Amount, o.Quantity, o.CustomerLocation, now); err != nil {
			return err
		}
	}
	return batch.Send()
}

func (s *clickhouseStorage) CreateSocialPosts(ctx context.Context, posts []models.SocialPost) error {
	if len(posts) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO social_posts (
			platform, post_id, likes, shares, comments, engagement_rate, timestamp
		)
	`)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, p := range posts {
		if err := batch.Append(p.Platform, p.PostID, p.Likes, p.Shares, p.Comments, p.EngagementRate, now); err != nil {
			return err
		}
	}
	return batch.Send()
}

func (s *clickhouseStorage) CreateTrafficSamples(ctx context.Context, samples []models.TrafficSample) error {
	if len(samples) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO traffic_samples (
			location, vehicle_count, avg_speed, congestion_level, timestamp
		)
	`)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, t := range samples {
		if err := batch.Append(t.Location, t.VehicleCount, t.AvgSpeed, t.CongestionLevel, now); err != nil {
			return err
		}
	}
	return batch.Send()
}

func (s *clickhouseStorage) Close() error {
	return s.conn.Close()
}
