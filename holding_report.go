package pocket

import "github.com/etnz/pocket/date"

// HoldingReport is a detailed view of a portfolio's holdings.
type HoldingReport struct {
	Currency string
	Cash     Money
	Equities []EquityHolding // sorted by asset identifier
	Total    Money
}

// EquityHolding is the line of a single equity in a HoldingReport.
type EquityHolding struct {
	ID      AssetID
	Ticker  string
	Name    string
	ISIN    string
	Market  string
	Owned   uint32
	Price   Money
	PriceOn date.Date
	Value   Money
}

// NewHoldingReport returns the detailed valuation of every holding.
func (p *Portfolio) NewHoldingReport() (*HoldingReport, error) {
	total, err := p.TotalValue()
	if err != nil {
		return nil, err
	}
	cur := p.Currency()
	r := &HoldingReport{
		Currency: cur,
		Cash:     M(p.Cash().Value(), cur),
		Total:    M(total, cur),
	}
	for id, h := range p.Holdings() {
		eq, ok := h.Asset.(Equity)
		if !ok {
			continue
		}
		r.Equities = append(r.Equities, EquityHolding{
			ID:      id,
			Ticker:  eq.Ticker,
			Name:    eq.Name,
			ISIN:    eq.ISIN,
			Market:  eq.Market,
			Owned:   h.Owned,
			Price:   M(uint64(eq.Price.Amount), cur),
			PriceOn: eq.Price.On,
			Value:   M(h.Value(), cur),
		})
	}
	return r, nil
}
