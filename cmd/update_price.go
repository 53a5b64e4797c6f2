package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/date"
	"github.com/google/subcommands"
)

type updatePriceCmd struct {
	id      uint64
	price   uint64
	url     string
	path    string
	date    string
	noCache bool
}

func (*updatePriceCmd) Name() string     { return "update-price" }
func (*updatePriceCmd) Synopsis() string { return "update the current price of a held equity" }
func (*updatePriceCmd) Usage() string {
	return `pkt update-price -id <id> (-price <minor units> | -url <url> -path <jsonpath>) [-d <date>] [-no-cache]

  Sets the current price of a held equity, either from -price in minor units,
  or fetched from a JSON endpoint: -path is a JSONPath expression selecting the
  price in major units, e.g. '$.chart.result[0].meta.regularMarketPrice'.

  Fetched responses are cached for the day in the temporary directory.
`
}

func (c *updatePriceCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.id, "id", 0, "Asset identifier")
	f.Uint64Var(&c.price, "price", 0, "New unit price in minor units, 0 is allowed")
	f.StringVar(&c.url, "url", "", "JSON endpoint to fetch the price from")
	f.StringVar(&c.path, "path", "", "JSONPath of the price in the -url response")
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the price")
	f.BoolVar(&c.noCache, "no-cache", false, "Do not use the daily HTTP cache")
}

func (c *updatePriceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	hasPrice := false
	f.Visit(func(fl *flag.Flag) { hasPrice = hasPrice || fl.Name == "price" })
	if (c.url == "") == !hasPrice {
		fmt.Fprintln(stderr, "Error: exactly one of -price or -url is required")
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid date %q: %v\n", c.date, err)
		return subcommands.ExitUsageError
	}

	p, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	amount, err := c.amount(ctx, p.Currency())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	id := pocket.AssetID(c.id)
	if err := p.UpdatePrice(id, pocket.Price{Amount: amount, On: on}); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveBook(p); status != subcommands.ExitSuccess {
		return status
	}
	h, _ := p.Holding(id)
	fmt.Fprintf(stdout, "%s is %s on %s\n", h.Asset.(pocket.Equity).Ticker, pocket.M(uint64(amount), p.Currency()), on)
	return subcommands.ExitSuccess
}

func (c *updatePriceCmd) amount(ctx context.Context, currency string) (uint32, error) {
	if c.url == "" {
		return toUint32("price", c.price)
	}
	client := http.DefaultClient
	if !c.noCache {
		client = pocket.DailyClient()
	}
	price, err := pocket.FetchQuote(ctx, client, pocket.QuoteSource{URL: c.url, Path: c.path})
	if err != nil {
		return 0, err
	}
	return pocket.MinorFromMajor(price, currency)
}
