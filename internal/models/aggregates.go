package models

// SensorStat is the per-sensor grouped average row of the analytics view.
type SensorStat struct {
	SensorID    string  `gorm:"column:sensor_id" json:"sensor_id"`
	AvgTemp     float64 `gorm:"column:avg_temp" json:"avg_temp"`
	AvgHumidity float64 `gorm:"column:avg_humidity" json:"avg_humidity"`
	AvgPressure float64 `gorm:"column:avg_pressure" json:"avg_pressure"`
	Count       int64   `gorm:"column:count" json:"count"`
}

// CategoryRevenue is the per-category revenue row of the analytics view,
// sorted descending by total revenue.
type CategoryRevenue struct {
	Category     string  `gorm:"column:category" json:"category"`
	TotalRevenue float64 `gorm:"column:total_revenue" json:"total_revenue"`
	TotalOrders  int64   `gorm:"column:total_orders" json:"total_orders"`
}
