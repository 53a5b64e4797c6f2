package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/date"
	"github.com/google/subcommands"
)

type buyCmd struct {
	id       uint64
	isin     string
	market   string
	name     string
	ticker   string
	price    uint64
	quantity uint64
	date     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares of an equity with the book cash" }
func (*buyCmd) Usage() string {
	return `pkt buy -id <id> -q <quantity> [-isin <isin> -ticker <ticker> -price <minor units>] [-market <mic>] [-name <name>] [-d <date>]

  Buys shares of an equity at its current price. The purchase is refused if its
  cost exceeds the cash balance.

  The first purchase of an equity declares it: -isin, -ticker and -price are
  required. Later purchases of the same -id use the stored equity and its price,
  use 'pkt update-price' to change it.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.id, "id", 0, "Asset identifier, 0 is reserved for cash")
	f.StringVar(&c.isin, "isin", "", "ISIN of the equity")
	f.StringVar(&c.market, "market", "", "Listing market of the equity")
	f.StringVar(&c.name, "name", "", "Display name of the equity")
	f.StringVar(&c.ticker, "ticker", "", "Ticker of the equity")
	f.Uint64Var(&c.price, "price", 0, "Unit price in minor units")
	f.Uint64Var(&c.quantity, "q", 0, "Quantity of shares to buy")
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the price")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == uint64(pocket.CashID) {
		fmt.Fprintln(stderr, "Error: -id is required and cannot be 0")
		return subcommands.ExitUsageError
	}
	quantity, err := toUint32("q", c.quantity)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	eq, err := c.equity(p)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := p.Purchase(eq, quantity); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, pocket.ErrInsufficientFunds) || errors.Is(err, pocket.ErrOverflow) {
			return subcommands.ExitFailure
		}
		return subcommands.ExitUsageError
	}
	if status := saveBook(p); status != subcommands.ExitSuccess {
		return status
	}
	cost := uint64(quantity) * uint64(eq.Price.Amount)
	fmt.Fprintf(stdout, "Bought %d %s for %s\n", quantity, eq.Ticker, pocket.M(cost, p.Currency()))
	return subcommands.ExitSuccess
}

// equity returns the stored equity when already held, or declares a new one from the flags.
func (c *buyCmd) equity(p *pocket.Portfolio) (pocket.Equity, error) {
	id := pocket.AssetID(c.id)
	if h, ok := p.Holding(id); ok {
		return h.Asset.(pocket.Equity), nil
	}
	if c.ticker == "" {
		return pocket.Equity{}, fmt.Errorf("-ticker is required to declare asset %d", id)
	}
	price, err := toUint32("price", c.price)
	if err != nil {
		return pocket.Equity{}, err
	}
	on, err := date.Parse(c.date)
	if err != nil {
		return pocket.Equity{}, fmt.Errorf("invalid date %q: %w", c.date, err)
	}
	return pocket.NewEquity(id, c.isin, c.market, c.name, c.ticker, pocket.Price{Amount: price, On: on})
}
