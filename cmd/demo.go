package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/date"
	"github.com/etnz/pocket/renderer"
	"github.com/google/subcommands"
)

type demoCmd struct {
	md bool
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the built-in scenarios without a book" }
func (*demoCmd) Usage() string {
	return `pkt demo [-md]

  Prints the growth of three sample accounts, then buys 50 shares at 50 with no
  cash (refused) and with 10000 cash. The global -settlement applies.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.md, "md", false, "Print the growth of the sample accounts as a markdown table")
}

// demoAccounts are the sample accounts of the demo.
func demoAccounts() []renderer.NamedAccount {
	return []renderer.NamedAccount{
		{Label: "Cash", Account: &pocket.Account{Kind: pocket.AccountCash, Amount: 10000, Rate: 7}},
		{Label: "Mortgage", Account: &pocket.Account{Kind: pocket.AccountLiability, Amount: 50000, Rate: 5}},
		{Label: "Savings", Account: &pocket.Account{Kind: pocket.AccountAsset, Amount: 10000, Rate: 7}},
	}
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := Settlement()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	accounts := demoAccounts()
	if c.md {
		fmt.Fprintln(stdout, renderer.GrowthMarkdown(accounts, defaultCurrency))
	} else {
		for _, na := range accounts {
			fmt.Fprintln(stdout, renderer.GrowthLine(na.Label, na.Account, defaultCurrency))
		}
	}

	apple, err := pocket.NewEquity(1, "US0378331005", "XNAS", "Apple Inc.", "AAPL",
		pocket.Price{Amount: 50, On: date.New(2025, 1, 2)})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, cash := range []uint32{0, 10000} {
		p := pocket.New(pocket.WithCash(cash), pocket.WithCurrency(defaultCurrency), pocket.WithSettlement(s))
		if err := p.Purchase(apple, 50); err != nil {
			fmt.Fprintf(stdout, "Purchase refused: %v\n", err)
		}
		total, err := p.TotalValue()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, renderer.ValueLine(total))
	}
	return subcommands.ExitSuccess
}
