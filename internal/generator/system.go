package generator

import (
	"math/rand/v2"

	"pulseboard/internal/models"
)

// SystemSnapshot emits the single per-tick server metrics snapshot.
// Draw order: cpu, memory, disk, network in, network out.
func (g *Generator) SystemSnapshot(rng *rand.Rand) models.SystemMetric {
	return models.SystemMetric{
		CPUUsage:    round2(uniform(rng, 15.0, 85.0)),
		MemoryUsage: round2(uniform(rng, 40.0, 90.0)),
		DiskUsage:   round2(uniform(rng, 50.0, 85.0)),
		NetworkIn:   round2(uniform(rng, 1.0, 100.0)),
		NetworkOut:  round2(uniform(rng, 1.0, 100.0)),
	}
}
