package generator

import (
	"math/rand/v2"

	"pulseboard/internal/models"
)

// WarningTemperature is the threshold at or above which a sensor reading is
// flagged "warning".
const WarningTemperature = 30.0

// Sensors emits one reading per configured sensor. Draw order per sensor:
// temperature, humidity, pressure.
func (g *Generator) Sensors(rng *rand.Rand) []models.SensorReading {
	readings := make([]models.SensorReading, 0, len(g.cfg.SensorIDs))
	for _, id := range g.cfg.SensorIDs {
		temperature := round2(uniform(rng, 18.0, 32.0))
		humidity := round2(uniform(rng, 30.0, 90.0))
		pressure := round2(uniform(rng, 980.0, 1025.0))

		status := "normal"
		if temperature >= WarningTemperature {
			status = "warning"
		}

		readings = append(readings, models.SensorReading{
			SensorID:    id,
			Temperature: temperature,
			Humidity:    humidity,
			Pressure:    pressure,
			Status:      status,
		})
	}
	return readings
}
