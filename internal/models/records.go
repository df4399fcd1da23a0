// Package models defines the seven telemetry record kinds persisted by the
// simulator and served by the dashboard API. Records are immutable once
// written; Timestamp is stamped by the write path at insert time.
package models

import "time"

// SensorReading is one IoT sensor sample. Status is derived from
// temperature: "warning" at or above 30°C, otherwise "normal".
type SensorReading struct {
	SensorID    string    `gorm:"column:sensor_id" json:"sensor_id"`
	Temperature float64   `gorm:"column:temperature;type:Float64" json:"temperature"`
	Humidity    float64   `gorm:"column:humidity;type:Float64" json:"humidity"`
	Pressure    float64   `gorm:"column:pressure;type:Float64" json:"pressure"`
	Status      string    `gorm:"column:status" json:"status"`
	Timestamp   time.Time `gorm:"column:timestamp;type:DateTime64(3)" json:"timestamp"`
}

func (SensorReading) TableName() string {
	return "sensor_readings"
}

func (SensorReading) TableOptions() string {
	return "ENGINE = MergeTree() ORDER BY (timestamp)"
}

// SystemMetric is one whole-server resource snapshot. Network rates are MB/s.
type SystemMetric struct {
	CPUUsage    float64   `gorm:"column:cpu_usage;type:Float64" json:"cpu_usage"`
	MemoryUsage float64   `gorm:"column:memory_usage;type:Float64" json:"memory_usage"`
	DiskUsage   float64   `gorm:"column:disk_usage;type:Float64" json:"disk_usage"`
	NetworkIn   float64   `gorm:"column:network_in;type:Float64" json:"network_in"`
	NetworkOut  float64   `gorm:"column:network_out;type:Float64" json:"network_out"`
	Timestamp   time.Time `gorm:"column:timestamp;type:DateTime64(3)" json:"timestamp"`
}

func (SystemMetric) TableName() string {
	return "system_metrics"
}

func (SystemMetric) TableOptions() string {
	return "ENGINE = MergeTree() ORDER BY (timestamp)"
}

// StockQuote is one tick of the simulated random walk for a symbol.
// ChangePercent is computed against the price before this tick's move.
type StockQuote struct {
	Symbol        string    `gorm:"column:symbol" json:"symbol"`
	Price         float64   `gorm:"column:price;type:Float64" json:"price"`
	Volume        int64     `gorm:"column:volume;type:Int64" json:"volume"`
	ChangePercent float64   `gorm:"column:change_percent;type:Float64" json:"change_percent"`
	MarketCap     float64   `gorm:"column:market_cap;type:Float64" json:"market_cap"`
	Timestamp     time.Time `gorm:"column:timestamp;type:DateTime64(3)" json:"timestamp"`
}

func (StockQuote) TableName() string {
	return "stock_quotes"
}

func (StockQuote) TableOptions() string {
	return "ENGINE = MergeTree() ORDER BY (symbol, timestamp)"
}

// WeatherReading is one city weather sample.
type WeatherReading struct {
	City        string    `gorm:"column:city" json:"city"`
	Temperature float64   `gorm:"column:temperature;type:Float64" json:"temperature"`
	Humidity    float64   `gorm:"column:humidity;type:Float64" json:"humidity"`
	WindSpeed   float64   `gorm:"column:wind_speed;type:Float64" json:"wind_speed"`
	Condition   string    `gorm:"column:condition" json:"condition"`
	Pressure    float64   `gorm:"column:pressure;type:Float64" json:"pressure"`
	Timestamp   time.Time `gorm:"column:timestamp;type:DateTime64(3)" json:"timestamp"`
}

func (WeatherReading) TableName() string {
	return "weather_readings"
}

func (WeatherReading) TableOptions() string {
	return "ENGINE = MergeTree() ORDER BY (city, timestamp)"
}

// EcommerceOrder is one simulated purchase. OrderID is a display label with
// no uniqueness guarantee.
type EcommerceOrder struct {
	OrderID          string    `gorm:"column:order_id" json:"order_id"`
	ProductName      string    `gorm:"column:product_name" json:"product_name"`
	Category         string    `gorm:"column:category" json:"category"`
	Amount           float64   `gorm:"column:amount;type:Float64" json:"amount"`
	Quantity         int64     `gorm:"column:quantity;type:Int64" json:"quantity"`
	CustomerLocation string    `gorm:"column:customer_location" json:"customer_location"`
	Timestamp        time.Time `gorm:"column:timestamp;type:DateTime64(3)" json:"timestamp"`
}

func (EcommerceOrder) TableName() string {
	return "ecommerce_orders"
}

func (EcommerceOrder) TableOptions() string {
	return "ENGINE = MergeTree() ORDER BY (timestamp)"
}

// SocialPost is one engagement snapshot for a platform post.
// EngagementRate = (likes+shares+comments)/10000 * 100, rounded to 2 decimals.
type SocialPost struct {
	Platform       string    `gorm:"column:platform" json:"platform"`
	PostID         string    `gorm:"column:post_id" json:"post_id"`
	Likes          int64     `gorm:"column:likes;type:Int64" json:"likes"`
	Shares         int64     `gorm:"column:shares;type:Int64" json:"shares"`
	Comments       int64     `gorm:"column:comments;type:Int64" json:"comments"`
	EngagementRate float64   `gorm:"column:engagement_rate;type:Float64" json:"engagement_rate"`
	Timestamp      time.Time `gorm:"column:timestamp;type:DateTime64(3)" json:"timestamp"`
}

func (SocialPost) TableName() string {
	return "social_posts"
}

func (SocialPost) TableOptions() string {
	return "ENGINE = MergeTree() ORDER BY (platform, timestamp)"
}

// TrafficSample is one road segment sample. CongestionLevel is derived from
// average speed: High below 30 km/h, Medium below 60, Low otherwise.
type TrafficSample struct {
	Location        string    `gorm:"column:location" json:"location"`
	VehicleCount    int64     `gorm:"column:vehicle_count;type:Int64" json:"vehicle_count"`
	AvgSpeed        float64   `gorm:"column:avg_speed;type:Float64" json:"avg_speed"`
	CongestionLevel string    `gorm:"column:congestion_level" json:"congestion_level"`
	Timestamp       time.Time `gorm:"column:timestamp;type:DateTime64(3)" json:"timestamp"`
}

func (TrafficSample) TableName() string {
	return "traffic_samples"
}

func (TrafficSample) TableOptions() string {
	return "ENGINE = MergeTree() ORDER BY (location, timestamp)"
}
