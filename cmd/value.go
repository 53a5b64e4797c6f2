package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pocket/renderer"
	"github.com/google/subcommands"
)

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "print the total value of the book" }
func (*valueCmd) Usage() string {
	return `pkt value

  Prints the sum of all holding values, in minor units of the book currency.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	total, err := p.TotalValue()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, renderer.ValueLine(total))
	return subcommands.ExitSuccess
}
