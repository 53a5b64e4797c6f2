package pocket

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of the cash slot when none is configured.
const DefaultCurrency = "GBP"

// Money is an amount of minor units (pence, cents...) in a currency.
type Money struct {
	minor uint64
	cur   string
}

// M returns the money worth 'minor' units of currency 'cur'.
func M(minor uint64, cur string) Money { return Money{minor: minor, cur: cur} }

func (m Money) Amount() uint64           { return m.minor }
func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { return m.minor == n.minor && m.cur == n.cur }
func (m Money) GreaterThan(n Money) bool { return m.minor > n.minor }

// currency returns the currency definition. Unknown codes have no fraction and no symbol.
func currency(code string) *money.Currency {
	if c := money.GetCurrency(code); c != nil {
		return c
	}
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, code).Currency()
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromUint64(m.minor).Shift(-int32(currency(m.cur).Fraction))
}

// String formats the amount with the currency's symbol and separators, e.g. "£10,000.00".
func (m Money) String() string {
	cur := currency(m.cur)
	if m.minor > math.MaxInt64 {
		// beyond the formatter's range
		return m.Decimal().StringFixed(int32(cur.Fraction)) + " " + m.cur
	}
	return cur.Formatter().Format(int64(m.minor))
}

// Symbol returns the currency's symbol, e.g. "£" for GBP.
func Symbol(code string) string { return currency(code).Grapheme }

// FormatMajor formats a major units amount with two decimals prefixed by the currency symbol.
// The sign goes after the symbol: "£-677.97".
func FormatMajor(amount float64, code string) string {
	return Symbol(code) + decimal.NewFromFloat(amount).StringFixed(2)
}

// MinorFromMajor converts a major units amount (e.g. 12.34 GBP) into minor units
// of the currency (1234), rounding to the currency's fraction.
func MinorFromMajor(amount decimal.Decimal, code string) (uint32, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("negative amount %s", amount)
	}
	minor := amount.Shift(int32(currency(code).Fraction)).Round(0)
	if minor.GreaterThan(decimal.NewFromUint64(math.MaxUint32)) {
		return 0, fmt.Errorf("amount %s %s: %w", amount, code, ErrOverflow)
	}
	return uint32(minor.IntPart()), nil
}
