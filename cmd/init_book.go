package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/pocket"
	"github.com/google/subcommands"
)

type initCmd struct {
	cash     uint64
	currency string
	force    bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new book with a starting cash balance" }
func (*initCmd) Usage() string {
	return `pkt init [-cash <minor units>] [-c <currency>] [-f]

  Creates the book file holding only cash. Amounts are in minor units of the
  currency: -cash 10000 in GBP is £100.00.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.cash, "cash", 0, "Starting cash balance in minor units")
	f.StringVar(&c.currency, "c", "", "Currency of the cash holding, defaults to the global -currency")
	f.BoolVar(&c.force, "f", false, "Overwrite an existing book")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	currency := c.currency
	if currency == "" {
		currency = defaultCurrency
	}
	if err := pocket.ValidateCurrency(currency); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cash, err := toUint32("cash", c.cash)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if _, err := os.Stat(bookFile); err == nil && !c.force {
		fmt.Fprintf(stderr, "Error: book %q already exists, use -f to overwrite it\n", bookFile)
		return subcommands.ExitFailure
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p := pocket.New(pocket.WithCash(cash), pocket.WithCurrency(currency))
	if status := saveBook(p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Created %s with %s cash\n", bookFile, pocket.M(uint64(cash), currency))
	return subcommands.ExitSuccess
}
