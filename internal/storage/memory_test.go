package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pulseboard/internal/models"
)

func TestMemoryStoreLatestOrderingAndLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := store.CreateStockQuotes(ctx, []models.StockQuote{
			{Symbol: "AAPL", Price: 100 + float64(i)},
		})
		require.NoError(t, err)
	}

	quotes, err := store.LatestStockQuotes(ctx, 3)
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	// Newest first: last inserted price comes back first.
	require.Equal(t, 104.0, quotes[0].Price)
	require.Equal(t, 103.0, quotes[1].Price)
	require.Equal(t, 102.0, quotes[2].Price)
	for i := 1; i < len(quotes); i++ {
		require.False(t, quotes[i].Timestamp.After(quotes[i-1].Timestamp),
			"timestamps must be non-increasing")
	}

	// Limit larger than stored rows returns everything.
	quotes, err = store.LatestStockQuotes(ctx, 50)
	require.NoError(t, err)
	require.Len(t, quotes, 5)
}

func TestMemoryStoreEmptyReads(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sensors, err := store.LatestSensorReadings(ctx, 20)
	require.NoError(t, err)
	require.NotNil(t, sensors)
	require.Empty(t, sensors)

	stats, err := store.SensorStats(ctx)
	require.NoError(t, err)
	require.Empty(t, stats)

	revenues, err := store.RevenueByCategory(ctx)
	require.NoError(t, err)
	require.Empty(t, revenues)
}

func TestMemoryStoreRevenueByCategory(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.CreateEcommerceOrders(ctx, []models.EcommerceOrder{
		{OrderID: "ORD00000001", Category: "A", Amount: 10},
		{OrderID: "ORD00000002", Category: "A", Amount: 20},
		{OrderID: "ORD00000003", Category: "B", Amount: 5},
	})
	require.NoError(t, err)

	revenues, err := store.RevenueByCategory(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.CategoryRevenue{
		{Category: "A", TotalRevenue: 30, TotalOrders: 2},
		{Category: "B", TotalRevenue: 5, TotalOrders: 1},
	}, revenues)
}

func TestMemoryStoreSensorStats(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.CreateSensorReadings(ctx, []models.SensorReading{
		{SensorID: "SENSOR_001", Temperature: 20, Humidity: 40, Pressure: 1000},
		{SensorID: "SENSOR_001", Temperature: 30, Humidity: 60, Pressure: 1010},
		{SensorID: "SENSOR_002", Temperature: 25, Humidity: 50, Pressure: 990},
	})
	require.NoError(t, err)

	stats, err := store.SensorStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byID := map[string]models.SensorStat{}
	for _, s := range stats {
		byID[s.SensorID] = s
	}
	require.Equal(t, 25.0, byID["SENSOR_001"].AvgTemp)
	require.Equal(t, 50.0, byID["SENSOR_001"].AvgHumidity)
	require.Equal(t, 1005.0, byID["SENSOR_001"].AvgPressure)
	require.Equal(t, int64(2), byID["SENSOR_001"].Count)
	require.Equal(t, int64(1), byID["SENSOR_002"].Count)
}
