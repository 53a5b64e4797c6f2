package pocket

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientFunds is returned when a purchase costs more than the cash holding is worth.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrOverflow is returned when a quantity or a value does not fit its integer type.
	ErrOverflow = errors.New("numeric overflow")
	// ErrReservedID is returned when an equity uses the identifier reserved for cash.
	ErrReservedID = errors.New("identifier reserved for cash")
	// ErrUnknownAsset is returned when an operation targets an asset that is not held.
	ErrUnknownAsset = errors.New("unknown asset")
)

// InsufficientFundsError details a refused purchase.
// It matches ErrInsufficientFunds with errors.Is.
type InsufficientFundsError struct {
	Ticker string
	Cost   Money
	Cash   Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("cannot buy %s for %s, cash balance is %s", e.Ticker, e.Cost, e.Cash)
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }
