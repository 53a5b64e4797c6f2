package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/pocket"
)

// NamedAccount is an account with a label for display.
type NamedAccount struct {
	Label   string
	Account *pocket.Account
}

// GrowthMarkdown renders the projected annual growth of several accounts as a markdown table.
func GrowthMarkdown(accounts []NamedAccount, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Annual growth\n\n")
	fmt.Fprintln(&b, "| Account | Kind | Amount | Rate | Growth |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, na := range accounts {
		a := na.Account
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			na.Label, a.Kind, pocket.FormatMajor(a.Amount, currency), a.Rate, pocket.FormatMajor(a.AnnualGrowth(), currency))
	}
	return b.String()
}
