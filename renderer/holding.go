package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/pocket"
)

// HoldingMarkdown renders a holding report as markdown.
func HoldingMarkdown(r *pocket.HoldingReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	fmt.Fprintf(&b, "Total value: **%s**\n\n", r.Total)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "## Equities")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| ID | Ticker | Name | ISIN | Market | Owned | Price | As of | Value |")
		fmt.Fprintln(w, "|---:|:---|:---|:---|:---|---:|---:|:---|---:|")
		for _, e := range r.Equities {
			fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %d | %s | %s | %s |\n",
				e.ID, e.Ticker, e.Name, e.ISIN, e.Market, e.Owned, e.Price, e.PriceOn, e.Value)
		}
		fmt.Fprintln(w)
		return len(r.Equities) > 0
	})

	fmt.Fprintln(&b, "## Cash")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Currency | Balance |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| %s | %s |\n", r.Currency, r.Cash)
	return b.String()
}
