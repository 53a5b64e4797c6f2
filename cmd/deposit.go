package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pocket"
	"github.com/google/subcommands"
)

type depositCmd struct {
	amount uint64
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit cash into the book" }
func (*depositCmd) Usage() string {
	return `pkt deposit -a <minor units>

  Credits the cash holding of the book.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.amount, "a", 0, "Amount to deposit in minor units")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := toUint32("a", c.amount)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.Deposit(amount); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(p); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Deposited %s, cash balance is %s\n",
		pocket.M(uint64(amount), p.Currency()), pocket.M(p.Cash().Value(), p.Currency()))
	return subcommands.ExitSuccess
}
