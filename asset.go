package pocket

import (
	"fmt"

	"github.com/etnz/pocket/date"
)

// AssetID identifies an asset within a portfolio.
type AssetID uint64

// CashID is the identifier reserved for the cash holding.
const CashID AssetID = 0

// AssetKind is the tag of the Asset sum type.
type AssetKind string

const (
	KindCash   AssetKind = "cash"
	KindEquity AssetKind = "equity"
)

// Asset is either a Cash or an Equity. The set is closed.
type Asset interface {
	AssetID() AssetID
	Kind() AssetKind
	asset()
}

// Cash is the liquid balance of a portfolio in a single currency.
type Cash struct {
	Currency string
}

func (Cash) AssetID() AssetID { return CashID }
func (Cash) Kind() AssetKind  { return KindCash }
func (Cash) asset()           {}

// Price is the current unit price of an equity, in minor units of the cash currency.
type Price struct {
	Amount uint32
	On     date.Date // last update
}

// Epoch returns the Unix time of the last update, 0 if never updated.
func (p Price) Epoch() int64 { return p.On.Unix() }

// Equity is a listed security.
type Equity struct {
	ID     AssetID
	ISIN   string
	Market string // listing market, e.g. "LSE"
	Name   string
	Ticker string
	Price  Price
}

func (e Equity) AssetID() AssetID { return e.ID }
func (Equity) Kind() AssetKind    { return KindEquity }
func (Equity) asset()             {}

// NewEquity returns an equity after validating its identifier and ISIN.
func NewEquity(id AssetID, isin, market, name, ticker string, price Price) (Equity, error) {
	if id == CashID {
		return Equity{}, fmt.Errorf("equity %q: %w", ticker, ErrReservedID)
	}
	if err := ValidateISIN(isin); err != nil {
		return Equity{}, fmt.Errorf("equity %q: invalid ISIN: %w", ticker, err)
	}
	return Equity{ID: id, ISIN: isin, Market: market, Name: name, Ticker: ticker, Price: price}, nil
}
