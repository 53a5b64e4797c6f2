package pocket

import (
	"fmt"
	"math"
	"strings"
)

// AccountKind tags an Account.
type AccountKind string

const (
	AccountAsset     AccountKind = "asset"
	AccountLiability AccountKind = "liability"
	AccountCash      AccountKind = "cash"
)

// ParseAccountKind parses "asset", "liability" or "cash".
func ParseAccountKind(s string) (AccountKind, error) {
	switch k := AccountKind(s); k {
	case AccountAsset, AccountLiability, AccountCash:
		return k, nil
	}
	return "", fmt.Errorf("unknown account kind %q, want one of asset, liability, cash", s)
}

// GrowthSign returns +1 when the rate of this kind makes the amount grow, -1 when it shrinks it.
//
// Assets appreciate. A liability's rate is a cost. A cash account's rate is
// read as an erosion rate (inflation), so cash shrinks like a liability.
func (k AccountKind) GrowthSign() float64 {
	if k == AccountAsset {
		return 1
	}
	return -1
}

// debit reports whether withdrawing decreases the amount.
func (k AccountKind) debit() bool { return k != AccountLiability }

// Title returns the kind with an upper case first letter.
func (k AccountKind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Account is a single labelled amount in major units with an annual rate.
type Account struct {
	Kind   AccountKind
	Amount float64
	Rate   Percent // annual, compounded monthly
}

// AnnualGrowth returns the change of the amount over one year:
//
//	amount × (1 + sign × rate/12)^12 − amount
func (a *Account) AnnualGrowth() float64 {
	monthly := a.Kind.GrowthSign() * a.Rate.Ratio() / 12
	return a.Amount*math.Pow(1+monthly, 12) - a.Amount
}

// Withdraw takes 'amount' out of the account. It is not bounded: the amount may become negative.
func (a *Account) Withdraw(amount float64) *Account {
	if a.Kind.debit() {
		a.Amount -= amount
	} else {
		a.Amount += amount
	}
	return a
}

// Deposit puts 'amount' into the account. A deposit on a liability pays it down.
func (a *Account) Deposit(amount float64) *Account {
	if a.Kind.debit() {
		a.Amount += amount
	} else {
		a.Amount -= amount
	}
	return a
}
