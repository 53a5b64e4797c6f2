package pocket

import (
	"time"

	"github.com/etnz/pocket/date"
)

var (
	AAPL = Equity{ID: 1, ISIN: "US0378331005", Market: "XNAS", Name: "Apple Inc.", Ticker: "AAPL",
		Price: Price{Amount: 50, On: date.New(2025, time.January, 2)}}
	GOOG = Equity{ID: 2, ISIN: "US38259P5089", Market: "XNAS", Name: "Alphabet Inc.", Ticker: "GOOG",
		Price: Price{Amount: 120, On: date.New(2025, time.January, 2)}}
)

// snapshot returns a copy of the holdings for comparisons.
func snapshot(p *Portfolio) map[AssetID]Holding {
	m := make(map[AssetID]Holding)
	for id, h := range p.Holdings() {
		m[id] = h
	}
	return m
}

func mustTotal(p *Portfolio) uint64 {
	v, err := p.TotalValue()
	if err != nil {
		panic(err)
	}
	return v
}
