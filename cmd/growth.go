package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/renderer"
	"github.com/google/subcommands"
)

type growthCmd struct {
	kind     string
	amount   float64
	rate     float64
	label    string
	currency string
	withdraw float64
	deposit  float64
}

func (*growthCmd) Name() string     { return "growth" }
func (*growthCmd) Synopsis() string { return "project one year of monthly compounded growth of an account" }
func (*growthCmd) Usage() string {
	return `pkt growth -k <asset|liability|cash> -a <amount> -r <annual rate %> [-l <label>] [-c <currency>] [-withdraw <x>] [-deposit <x>]

  Prints the change of the account amount over one year, compounded monthly.
  An asset grows by its rate, a liability costs its rate, and the rate of a
  cash account is an erosion rate such as inflation.

  -withdraw and -deposit are applied to the amount before the projection.
`
}

func (c *growthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", string(pocket.AccountAsset), "Account kind: asset, liability or cash")
	f.Float64Var(&c.amount, "a", 0, "Account amount in major units")
	f.Float64Var(&c.rate, "r", 0, "Annual rate in percent")
	f.StringVar(&c.label, "l", "", "Account label, defaults to the kind")
	f.StringVar(&c.currency, "c", "", "Currency of the account, defaults to the global -currency")
	f.Float64Var(&c.withdraw, "withdraw", 0, "Amount withdrawn before the projection")
	f.Float64Var(&c.deposit, "deposit", 0, "Amount deposited before the projection")
}

func (c *growthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := pocket.ParseAccountKind(c.kind)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	currency := c.currency
	if currency == "" {
		currency = defaultCurrency
	}
	label := c.label
	if label == "" {
		label = kind.Title()
	}

	a := &pocket.Account{Kind: kind, Amount: c.amount, Rate: pocket.Percent(c.rate)}
	a.Withdraw(c.withdraw).Deposit(c.deposit)

	fmt.Fprintln(stdout, renderer.GrowthLine(label, a, currency))
	return subcommands.ExitSuccess
}
