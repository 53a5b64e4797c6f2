package pocket

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math"
	"math/bits"
	"slices"
)

// Settlement decides what a purchase does to the cash holding.
type Settlement int

const (
	// SettleCash debits the cost of a purchase from the cash holding.
	SettleCash Settlement = iota
	// SettleNone only records the acquired quantity, cash is never debited.
	SettleNone
)

func (s Settlement) String() string {
	switch s {
	case SettleCash:
		return "cash"
	case SettleNone:
		return "none"
	}
	return fmt.Sprintf("Settlement(%d)", int(s))
}

// ParseSettlement parses "cash" or "none".
func ParseSettlement(s string) (Settlement, error) {
	switch s {
	case "cash":
		return SettleCash, nil
	case "none":
		return SettleNone, nil
	}
	return 0, fmt.Errorf("unknown settlement %q, want \"cash\" or \"none\"", s)
}

type options struct {
	cash       uint32
	currency   string
	settlement Settlement
}

// Option configures a Portfolio created by New.
type Option func(*options)

// WithCash sets the starting balance of the cash holding, in minor units.
func WithCash(amount uint32) Option { return func(o *options) { o.cash = amount } }

// WithCurrency sets the currency of the cash holding.
func WithCurrency(code string) Option { return func(o *options) { o.currency = code } }

// WithSettlement sets the purchase settlement policy.
func WithSettlement(s Settlement) Option { return func(o *options) { o.settlement = s } }

// Portfolio maps asset identifiers to holdings.
//
// The cash holding always exists under CashID, and there is at most one
// holding per identifier.
type Portfolio struct {
	holdings   map[AssetID]*Holding
	settlement Settlement
}

// New returns a portfolio holding only cash, zero GBP unless configured otherwise.
func New(opts ...Option) *Portfolio {
	o := options{currency: DefaultCurrency}
	for _, opt := range opts {
		opt(&o)
	}
	return &Portfolio{
		holdings: map[AssetID]*Holding{
			CashID: {Asset: Cash{Currency: o.currency}, Owned: o.cash},
		},
		settlement: o.settlement,
	}
}

// Settlement returns the purchase settlement policy.
func (p *Portfolio) Settlement() Settlement { return p.settlement }

func (p *Portfolio) cash() *Holding { return p.holdings[CashID] }

// Currency returns the currency of the cash holding, in which all values are expressed.
func (p *Portfolio) Currency() string { return p.cash().Asset.(Cash).Currency }

// Cash returns the cash holding.
func (p *Portfolio) Cash() Holding { return *p.cash() }

// Len returns the number of holdings, cash included.
func (p *Portfolio) Len() int { return len(p.holdings) }

// Holding returns a copy of the holding for id.
func (p *Portfolio) Holding(id AssetID) (Holding, bool) {
	h, ok := p.holdings[id]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Holdings iterates over copies of all holdings sorted by identifier, cash first.
func (p *Portfolio) Holdings() iter.Seq2[AssetID, Holding] {
	return func(yield func(AssetID, Holding) bool) {
		for _, id := range slices.Sorted(maps.Keys(p.holdings)) {
			if !yield(id, *p.holdings[id]) {
				return
			}
		}
	}
}

// TotalValue returns the sum of all holding values in minor units of the cash currency.
// Summation order does not matter; a sum that does not fit in 64 bits returns ErrOverflow.
func (p *Portfolio) TotalValue() (uint64, error) {
	var total, carry uint64
	for _, h := range p.holdings {
		total, carry = bits.Add64(total, h.Value(), 0)
		if carry != 0 {
			return 0, fmt.Errorf("total value: %w", ErrOverflow)
		}
	}
	return total, nil
}

// Purchase records the acquisition of 'quantity' shares of 'asset' at its current price.
//
// The purchase fails with an *InsufficientFundsError if its cost exceeds the
// value of the cash holding; a cost equal to the cash value is accepted. A
// failed purchase leaves the portfolio unchanged.
//
// If the asset is already held, its quantity is increased and the stored asset
// is kept as is (see UpdatePrice). Otherwise a new holding is inserted.
// With SettleCash the cost is debited from the cash holding.
func (p *Portfolio) Purchase(asset Equity, quantity uint32) error {
	if asset.ID == CashID {
		return fmt.Errorf("cannot purchase %q: %w", asset.Ticker, ErrReservedID)
	}
	cash := p.cash()
	cost := M(uint64(quantity)*uint64(asset.Price.Amount), p.Currency())
	if available := M(cash.Value(), p.Currency()); cost.GreaterThan(available) {
		return &InsufficientFundsError{Ticker: asset.Ticker, Cost: cost, Cash: available}
	}

	h, held := p.holdings[asset.ID]
	if held && uint64(h.Owned)+uint64(quantity) > math.MaxUint32 {
		return fmt.Errorf("cannot purchase %d more %q: %w", quantity, asset.Ticker, ErrOverflow)
	}

	// no error from here on
	if held {
		h.Owned += quantity
	} else {
		p.holdings[asset.ID] = &Holding{Asset: asset, Owned: quantity}
	}
	if p.settlement == SettleCash {
		// cost <= cash.Owned, it fits.
		cash.Owned -= uint32(cost.Amount())
	}
	log.Printf("bought %d %s for %s", quantity, asset.Ticker, cost)
	return nil
}

// Deposit credits the cash holding with 'amount' minor units.
func (p *Portfolio) Deposit(amount uint32) error {
	cash := p.cash()
	if uint64(cash.Owned)+uint64(amount) > math.MaxUint32 {
		return fmt.Errorf("cannot deposit %s: %w", M(uint64(amount), p.Currency()), ErrOverflow)
	}
	cash.Owned += amount
	return nil
}

// UpdatePrice replaces the current price of a held equity.
func (p *Portfolio) UpdatePrice(id AssetID, price Price) error {
	if id == CashID {
		return fmt.Errorf("cannot update the price of cash: %w", ErrReservedID)
	}
	h, ok := p.holdings[id]
	if !ok {
		return fmt.Errorf("cannot update the price of asset %d: %w", id, ErrUnknownAsset)
	}
	eq := h.Asset.(Equity)
	eq.Price = price
	h.Asset = eq
	return nil
}

// insert adds a decoded holding, enforcing the store invariants.
func (p *Portfolio) insert(h Holding) error {
	id := h.Asset.AssetID()
	if id == CashID {
		return fmt.Errorf("asset %d: %w", id, ErrReservedID)
	}
	if _, exists := p.holdings[id]; exists {
		return fmt.Errorf("asset %d is already held", id)
	}
	p.holdings[id] = &h
	return nil
}
