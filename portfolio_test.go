package pocket

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	p := New()
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	cash, ok := p.Holding(CashID)
	if !ok {
		t.Fatalf("cash holding is missing")
	}
	if cash.Owned != 0 || cash.Asset != (Cash{Currency: "GBP"}) {
		t.Errorf("cash = %+v, want 0 GBP", cash)
	}
	if p.Settlement() != SettleCash {
		t.Errorf("Settlement() = %v, want %v", p.Settlement(), SettleCash)
	}

	p = New(WithCash(10000), WithCurrency("USD"), WithSettlement(SettleNone))
	if got := p.Cash().Owned; got != 10000 {
		t.Errorf("cash = %d, want 10000", got)
	}
	if got := p.Currency(); got != "USD" {
		t.Errorf("Currency() = %q, want USD", got)
	}
	if p.Settlement() != SettleNone {
		t.Errorf("Settlement() = %v, want %v", p.Settlement(), SettleNone)
	}
}

func TestHolding_Value(t *testing.T) {
	testCases := []struct {
		name string
		h    Holding
		want uint64
	}{
		{"cash is its quantity", Holding{Asset: Cash{Currency: "GBP"}, Owned: 10000}, 10000},
		{"equity is quantity times price", Holding{Asset: AAPL, Owned: 50}, 2500},
		{"no quantity", Holding{Asset: AAPL}, 0},
		{"widened before multiply",
			Holding{Asset: Equity{ID: 9, Price: Price{Amount: math.MaxUint32}}, Owned: math.MaxUint32},
			uint64(math.MaxUint32) * uint64(math.MaxUint32)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.h.Value(); got != tc.want {
				t.Errorf("Value() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPortfolio_Purchase(t *testing.T) {
	t.Run("no cash", func(t *testing.T) {
		p := New()
		before := snapshot(p)
		err := p.Purchase(AAPL, 50)
		if !errors.Is(err, ErrInsufficientFunds) {
			t.Fatalf("Purchase() error = %v, want ErrInsufficientFunds", err)
		}
		var ife *InsufficientFundsError
		if !errors.As(err, &ife) {
			t.Fatalf("Purchase() error %T is not an *InsufficientFundsError", err)
		}
		if ife.Cost.Amount() != 2500 || ife.Cash.Amount() != 0 {
			t.Errorf("error cost=%v cash=%v, want 2500 and 0", ife.Cost, ife.Cash)
		}
		if want := "cannot buy AAPL for £25.00, cash balance is £0.00"; err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
		if !reflect.DeepEqual(snapshot(p), before) {
			t.Errorf("holdings changed after a failed purchase: %v", snapshot(p))
		}
		if got := mustTotal(p); got != 0 {
			t.Errorf("TotalValue() = %d, want 0", got)
		}
	})

	t.Run("cash is debited", func(t *testing.T) {
		p := New(WithCash(10000))
		if err := p.Purchase(AAPL, 50); err != nil {
			t.Fatalf("Purchase() error = %v", err)
		}
		if got := p.Cash().Owned; got != 7500 {
			t.Errorf("cash = %d, want 7500", got)
		}
		if got := mustTotal(p); got != 10000 {
			t.Errorf("TotalValue() = %d, want 10000", got)
		}
	})

	t.Run("record only keeps cash", func(t *testing.T) {
		p := New(WithCash(10000), WithSettlement(SettleNone))
		if err := p.Purchase(AAPL, 50); err != nil {
			t.Fatalf("Purchase() error = %v", err)
		}
		if got := p.Cash().Owned; got != 10000 {
			t.Errorf("cash = %d, want 10000", got)
		}
		if got := mustTotal(p); got != 12500 {
			t.Errorf("TotalValue() = %d, want 12500", got)
		}
	})

	t.Run("cost equal to cash is accepted", func(t *testing.T) {
		p := New(WithCash(2500))
		if err := p.Purchase(AAPL, 50); err != nil {
			t.Fatalf("Purchase() error = %v", err)
		}
		if got := p.Cash().Owned; got != 0 {
			t.Errorf("cash = %d, want 0", got)
		}
	})

	t.Run("one more than cash is refused", func(t *testing.T) {
		p := New(WithCash(2499))
		if err := p.Purchase(AAPL, 50); !errors.Is(err, ErrInsufficientFunds) {
			t.Errorf("Purchase() error = %v, want ErrInsufficientFunds", err)
		}
	})

	t.Run("first purchase inserts one holding", func(t *testing.T) {
		p := New(WithCash(100000))
		if err := p.Purchase(AAPL, 10); err != nil {
			t.Fatalf("Purchase() error = %v", err)
		}
		if p.Len() != 2 {
			t.Errorf("Len() = %d, want 2", p.Len())
		}
		h, ok := p.Holding(AAPL.ID)
		if !ok || h.Owned != 10 {
			t.Errorf("Holding(%d) = %+v, %v, want 10 owned", AAPL.ID, h, ok)
		}
	})

	t.Run("repeated purchase accumulates", func(t *testing.T) {
		p := New(WithCash(100000))
		for _, q := range []uint32{10, 5, 7} {
			if err := p.Purchase(AAPL, q); err != nil {
				t.Fatalf("Purchase(%d) error = %v", q, err)
			}
		}
		if p.Len() != 2 {
			t.Errorf("Len() = %d, want 2", p.Len())
		}
		if h, _ := p.Holding(AAPL.ID); h.Owned != 22 {
			t.Errorf("owned = %d, want 22", h.Owned)
		}
	})

	t.Run("held asset keeps its stored price", func(t *testing.T) {
		p := New(WithCash(100000))
		if err := p.Purchase(AAPL, 10); err != nil {
			t.Fatalf("Purchase() error = %v", err)
		}
		pricier := AAPL
		pricier.Price.Amount = 80
		if err := p.Purchase(pricier, 10); err != nil {
			t.Fatalf("Purchase() error = %v", err)
		}
		h, _ := p.Holding(AAPL.ID)
		if got := h.Asset.(Equity).Price.Amount; got != 50 {
			t.Errorf("stored price = %d, want 50", got)
		}
		// 100000 - 500 - 800 in cash, 20 shares at 50.
		if got := mustTotal(p); got != 98700+1000 {
			t.Errorf("TotalValue() = %d, want %d", got, 98700+1000)
		}
	})

	t.Run("cash identifier is reserved", func(t *testing.T) {
		p := New(WithCash(100000))
		fake := AAPL
		fake.ID = CashID
		if err := p.Purchase(fake, 1); !errors.Is(err, ErrReservedID) {
			t.Errorf("Purchase() error = %v, want ErrReservedID", err)
		}
		if p.Len() != 1 {
			t.Errorf("Len() = %d, want 1", p.Len())
		}
	})

	t.Run("quantity overflow", func(t *testing.T) {
		free := Equity{ID: 3, Ticker: "FREE"}
		p := New()
		if err := p.Purchase(free, math.MaxUint32); err != nil {
			t.Fatalf("Purchase() error = %v", err)
		}
		before := snapshot(p)
		if err := p.Purchase(free, 1); !errors.Is(err, ErrOverflow) {
			t.Errorf("Purchase() error = %v, want ErrOverflow", err)
		}
		if !reflect.DeepEqual(snapshot(p), before) {
			t.Errorf("holdings changed after a failed purchase")
		}
	})
}

func TestPortfolio_PurchaseZeroQuantity(t *testing.T) {
	p := New()
	if err := p.Purchase(AAPL, 0); err != nil {
		t.Fatalf("Purchase(AAPL, 0) = %v, want nil", err)
	}
	h, ok := p.Holding(AAPL.ID)
	if !ok || h.Owned != 0 {
		t.Errorf("Holding(AAPL) = %v, %v, want 0 shares held", h, ok)
	}
	if got := mustTotal(p); got != 0 {
		t.Errorf("TotalValue() = %d, want 0", got)
	}
}

func TestPortfolio_TotalValue(t *testing.T) {
	p := New(WithCash(100000), WithSettlement(SettleNone))
	if err := p.Purchase(AAPL, 50); err != nil {
		t.Fatal(err)
	}
	if err := p.Purchase(GOOG, 10); err != nil {
		t.Fatal(err)
	}
	var want uint64
	for _, h := range p.Holdings() {
		want += h.Value()
	}
	if got := mustTotal(p); got != want || got != 100000+2500+1200 {
		t.Errorf("TotalValue() = %d, want %d", got, want)
	}
}

func TestPortfolio_TotalValueOverflow(t *testing.T) {
	p := New(WithCash(math.MaxUint32))
	expensive := Price{Amount: math.MaxUint32}
	for id := AssetID(1); id <= 3; id++ {
		if err := p.insert(Holding{Asset: Equity{ID: id, Price: expensive}, Owned: math.MaxUint32}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := p.TotalValue(); !errors.Is(err, ErrOverflow) {
		t.Errorf("TotalValue() error = %v, want ErrOverflow", err)
	}
}

func TestPortfolio_Holdings(t *testing.T) {
	p := New(WithCash(100000))
	for _, eq := range []Equity{GOOG, AAPL} {
		if err := p.Purchase(eq, 1); err != nil {
			t.Fatal(err)
		}
	}
	var ids []AssetID
	for id := range p.Holdings() {
		ids = append(ids, id)
	}
	if want := []AssetID{CashID, AAPL.ID, GOOG.ID}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Holdings() ids = %v, want %v", ids, want)
	}
}

func TestPortfolio_Deposit(t *testing.T) {
	p := New(WithCash(100))
	if err := p.Deposit(50); err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	if got := p.Cash().Owned; got != 150 {
		t.Errorf("cash = %d, want 150", got)
	}
	if err := p.Deposit(math.MaxUint32); !errors.Is(err, ErrOverflow) {
		t.Errorf("Deposit() error = %v, want ErrOverflow", err)
	}
	if got := p.Cash().Owned; got != 150 {
		t.Errorf("cash = %d after a failed deposit, want 150", got)
	}
}

func TestPortfolio_UpdatePrice(t *testing.T) {
	p := New(WithCash(10000), WithSettlement(SettleNone))
	if err := p.Purchase(AAPL, 10); err != nil {
		t.Fatal(err)
	}
	if err := p.UpdatePrice(AAPL.ID, Price{Amount: 70}); err != nil {
		t.Fatalf("UpdatePrice() error = %v", err)
	}
	if got := mustTotal(p); got != 10700 {
		t.Errorf("TotalValue() = %d, want 10700", got)
	}
	if err := p.UpdatePrice(GOOG.ID, Price{Amount: 1}); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("UpdatePrice(GOOG) error = %v, want ErrUnknownAsset", err)
	}
	if err := p.UpdatePrice(CashID, Price{Amount: 1}); !errors.Is(err, ErrReservedID) {
		t.Errorf("UpdatePrice(cash) error = %v, want ErrReservedID", err)
	}
}

func TestParseSettlement(t *testing.T) {
	for _, s := range []Settlement{SettleCash, SettleNone} {
		got, err := ParseSettlement(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSettlement(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseSettlement("debit"); err == nil {
		t.Errorf("ParseSettlement(%q) expected an error", "debit")
	}
}

func TestNewEquity(t *testing.T) {
	if _, err := NewEquity(1, "US0378331005", "XNAS", "Apple Inc.", "AAPL", Price{Amount: 50}); err != nil {
		t.Errorf("NewEquity() error = %v", err)
	}
	if _, err := NewEquity(CashID, "US0378331005", "XNAS", "Apple Inc.", "AAPL", Price{}); !errors.Is(err, ErrReservedID) {
		t.Errorf("NewEquity(CashID) error = %v, want ErrReservedID", err)
	}
	if _, err := NewEquity(1, "US0378331006", "XNAS", "Apple Inc.", "AAPL", Price{}); err == nil {
		t.Errorf("NewEquity() with a bad ISIN expected an error")
	}
}

func TestPrice_Epoch(t *testing.T) {
	if got, want := AAPL.Price.Epoch(), int64(1735776000); got != want {
		t.Errorf("Epoch() = %d, want %d", got, want)
	}
	if got := (Price{Amount: 50}).Epoch(); got != 0 {
		t.Errorf("Epoch() of a never updated price = %d, want 0", got)
	}
}
