package generator

import (
	"math/rand/v2"

	"pulseboard/internal/models"
)

// PriceBook carries each symbol's last price across ticks. It is the only
// cross-tick state in the simulation and must stay confined to the loop that
// owns it; readers only ever see prices through emitted StockQuote records.
type PriceBook struct {
	symbols []string
	last    map[string]float64
}

// NewPriceBook seeds a book from starting prices, preserving seed order.
func NewPriceBook(seeds []StockSeed) *PriceBook {
	book := &PriceBook{
		symbols: make([]string, 0, len(seeds)),
		last:    make(map[string]float64, len(seeds)),
	}
	for _, s := range seeds {
		book.symbols = append(book.symbols, s.Symbol)
		book.last[s.Symbol] = s.Price
	}
	return book
}

// Last returns the current price for a symbol and whether it is tracked.
func (b *PriceBook) Last(symbol string) (float64, bool) {
	price, ok := b.last[symbol]
	return price, ok
}

// Symbols returns the tracked symbols in book order.
func (b *PriceBook) Symbols() []string {
	return b.symbols
}

// Stocks advances the random walk one tick and emits a quote per symbol, in
// book order. Per symbol the draws are: price change, volume, market-cap
// multiplier. ChangePercent uses the price before the move as denominator;
// the book is updated to the new price before the next symbol is handled.
func (g *Generator) Stocks(rng *rand.Rand, book *PriceBook) []models.StockQuote {
	quotes := make([]models.StockQuote, 0, len(book.symbols))
	for _, symbol := range book.symbols {
		prev := book.last[symbol]

		change := uniform(rng, -10.0, 10.0)
		price := round2(prev + change)
		book.last[symbol] = price

		quotes = append(quotes, models.StockQuote{
			Symbol:        symbol,
			Price:         price,
			Volume:        intBetween(rng, 500_000, 2_000_000),
			ChangePercent: round2(change / prev * 100),
			MarketCap:     round2(price * float64(intBetween(rng, 100, 500))),
		})
	}
	return quotes
}
