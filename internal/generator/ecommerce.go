package generator

import (
	"math/rand/v2"

	"pulseboard/internal/models"
)

// Orders emits between 2 and 4 independent orders. Draw order: order count,
// then per order: category, product, amount, quantity, customer location,
// order ID digits. Order IDs are display labels; collisions are tolerated.
func (g *Generator) Orders(rng *rand.Rand) []models.EcommerceOrder {
	count := intBetween(rng, 2, 4)
	orders := make([]models.EcommerceOrder, 0, count)
	for range count {
		category := pick(rng, g.cfg.Categories)
		orders = append(orders, models.EcommerceOrder{
			Category:         category,
			ProductName:      pick(rng, g.cfg.Products[category]),
			Amount:           round2(uniform(rng, 10.0, 500.0)),
			Quantity:         intBetween(rng, 1, 5),
			CustomerLocation: pick(rng, g.cfg.CustomerLocations),
			OrderID:          randomID(rng, "ORD", orderIDDigits, 8),
		})
	}
	return orders
}
