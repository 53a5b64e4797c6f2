package pocket

// Holding is an owned quantity of an asset: minor units for Cash, a number of shares for an Equity.
type Holding struct {
	Asset Asset
	Owned uint32
}

// Value returns the holding's value in minor units.
// Operands are widened to 64 bits first, so the product cannot overflow.
func (h Holding) Value() uint64 {
	switch a := h.Asset.(type) {
	case Cash:
		return uint64(h.Owned)
	case Equity:
		return uint64(h.Owned) * uint64(a.Price.Amount)
	}
	return 0
}
