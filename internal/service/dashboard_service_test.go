package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pulseboard/internal/models"
	"pulseboard/internal/storage"
)

func TestAllDataEmptyStore(t *testing.T) {
	svc := NewDashboardService(storage.NewMemoryStore())

	data, err := svc.AllData(context.Background())
	require.NoError(t, err)

	require.NotNil(t, data.Sensors)
	require.Empty(t, data.Sensors)
	require.NotNil(t, data.SystemMetrics)
	require.Empty(t, data.SystemMetrics)
	require.NotNil(t, data.Stocks)
	require.Empty(t, data.Stocks)
	require.NotNil(t, data.Weather)
	require.Empty(t, data.Weather)
	require.NotNil(t, data.Ecommerce)
	require.Empty(t, data.Ecommerce)
	require.NotNil(t, data.SocialMedia)
	require.Empty(t, data.SocialMedia)
	require.NotNil(t, data.Traffic)
	require.Empty(t, data.Traffic)
}

func TestAllDataAppliesLimits(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 40; i++ {
		require.NoError(t, store.CreateStockQuotes(ctx, []models.StockQuote{
			{Symbol: "AAPL", Price: float64(i)},
		}))
		require.NoError(t, store.CreateSensorReadings(ctx, []models.SensorReading{
			{SensorID: "SENSOR_001", Temperature: 20},
		}))
	}

	data, err := NewDashboardService(store).AllData(ctx)
	require.NoError(t, err)

	require.Len(t, data.Stocks, 30)
	require.Len(t, data.Sensors, 20)
	// Newest first.
	require.Equal(t, 39.0, data.Stocks[0].Price)
}

func TestAnalyticsRoundsAverages(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	// Three readings whose means have repeating decimals.
	require.NoError(t, store.CreateSensorReadings(ctx, []models.SensorReading{
		{SensorID: "SENSOR_001", Temperature: 10, Humidity: 50, Pressure: 1000},
		{SensorID: "SENSOR_001", Temperature: 10, Humidity: 50, Pressure: 1000},
		{SensorID: "SENSOR_001", Temperature: 11, Humidity: 51, Pressure: 1001},
	}))

	analytics, err := NewDashboardService(store).Analytics(ctx)
	require.NoError(t, err)
	require.Len(t, analytics.SensorStats, 1)

	stat := analytics.SensorStats[0]
	require.Equal(t, "SENSOR_001", stat.SensorID)
	require.Equal(t, 10.33, stat.AvgTemp)
	require.Equal(t, 50.33, stat.AvgHumidity)
	require.Equal(t, 1000.33, stat.AvgPressure)
	require.Equal(t, int64(3), stat.Count)
}

func TestAnalyticsRevenueOrdering(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.CreateEcommerceOrders(ctx, []models.EcommerceOrder{
		{OrderID: "ORD00000001", Category: "Books", Amount: 10},
		{OrderID: "ORD00000002", Category: "Books", Amount: 20},
		{OrderID: "ORD00000003", Category: "Toys", Amount: 5},
		{OrderID: "ORD00000004", Category: "Electronics", Amount: 499.99},
	}))

	analytics, err := NewDashboardService(store).Analytics(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.CategoryRevenue{
		{Category: "Electronics", TotalRevenue: 499.99, TotalOrders: 1},
		{Category: "Books", TotalRevenue: 30, TotalOrders: 2},
		{Category: "Toys", TotalRevenue: 5, TotalOrders: 1},
	}, analytics.RevenueByCategory)
}
