package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pocket/renderer"
	"github.com/google/subcommands"
)

type holdingCmd struct {
	md bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the holdings of the book" }
func (*holdingCmd) Usage() string {
	return `pkt holding [-md]

  Displays the cash balance and every equity position with its value.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.md, "md", false, "Print the raw markdown report")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := p.NewHoldingReport()
	if err != nil {
		fmt.Fprintf(stderr, "Error generating holding report: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.HoldingMarkdown(report)
	if c.md {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
