package generator

import (
	"math/rand/v2"

	"pulseboard/internal/models"
)

// Congestion thresholds in km/h: below Medium is "High", below Low is
// "Medium", otherwise "Low".
const (
	congestionHighBelow   = 30.0
	congestionMediumBelow = 60.0
)

// Traffic emits one sample per configured road segment. Draw order per
// segment: vehicle count, average speed.
func (g *Generator) Traffic(rng *rand.Rand) []models.TrafficSample {
	samples := make([]models.TrafficSample, 0, len(g.cfg.TrafficLocations))
	for _, location := range g.cfg.TrafficLocations {
		count := intBetween(rng, 50, 500)
		speed := round1(uniform(rng, 20.0, 100.0))

		samples = append(samples, models.TrafficSample{
			Location:        location,
			VehicleCount:    count,
			AvgSpeed:        speed,
			CongestionLevel: CongestionLevel(speed),
		})
	}
	return samples
}

// CongestionLevel derives the congestion label from average speed.
func CongestionLevel(avgSpeed float64) string {
	switch {
	case avgSpeed < congestionHighBelow:
		return "High"
	case avgSpeed < congestionMediumBelow:
		return "Medium"
	default:
		return "Low"
	}
}
