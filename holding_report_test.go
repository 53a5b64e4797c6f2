package pocket

import (
	"testing"
	"time"

	"github.com/etnz/pocket/date"
)

func TestPortfolio_NewHoldingReport(t *testing.T) {
	p := New(WithCash(100000))
	for _, buy := range []struct {
		eq Equity
		q  uint32
	}{{GOOG, 10}, {AAPL, 50}} {
		if err := p.Purchase(buy.eq, buy.q); err != nil {
			t.Fatal(err)
		}
	}

	r, err := p.NewHoldingReport()
	if err != nil {
		t.Fatalf("NewHoldingReport() error = %v", err)
	}
	if r.Currency != "GBP" {
		t.Errorf("Currency = %q, want GBP", r.Currency)
	}
	if want := M(100000-1200-2500, "GBP"); !r.Cash.Equal(want) {
		t.Errorf("Cash = %v, want %v", r.Cash, want)
	}
	if want := M(100000, "GBP"); !r.Total.Equal(want) {
		t.Errorf("Total = %v, want %v", r.Total, want)
	}
	if len(r.Equities) != 2 {
		t.Fatalf("len(Equities) = %d, want 2", len(r.Equities))
	}
	first := r.Equities[0]
	if first.Ticker != "AAPL" || first.Owned != 50 || !first.Value.Equal(M(2500, "GBP")) || !first.Price.Equal(M(50, "GBP")) {
		t.Errorf("Equities[0] = %+v, want AAPL 50 x 50", first)
	}
	if first.PriceOn != date.New(2025, time.January, 2) {
		t.Errorf("PriceOn = %v, want 2025-01-02", first.PriceOn)
	}
	if r.Equities[1].Ticker != "GOOG" {
		t.Errorf("Equities[1].Ticker = %q, want GOOG", r.Equities[1].Ticker)
	}
}
