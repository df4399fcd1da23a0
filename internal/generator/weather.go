package generator

import (
	"math/rand/v2"

	"pulseboard/internal/models"
)

// Weather emits one reading per configured city. Draw order per city:
// temperature, humidity, wind, condition, pressure.
func (g *Generator) Weather(rng *rand.Rand) []models.WeatherReading {
	readings := make([]models.WeatherReading, 0, len(g.cfg.Cities))
	for _, city := range g.cfg.Cities {
		readings = append(readings, models.WeatherReading{
			City:        city,
			Temperature: round1(uniform(rng, 10.0, 35.0)),
			Humidity:    round1(uniform(rng, 40.0, 95.0)),
			WindSpeed:   round1(uniform(rng, 5.0, 30.0)),
			Condition:   pick(rng, g.cfg.Conditions),
			Pressure:    round1(uniform(rng, 1000.0, 1020.0)),
		})
	}
	return readings
}
