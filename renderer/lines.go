package renderer

import (
	"fmt"

	"github.com/etnz/pocket"
)

// ValueLine is the one line summary of a portfolio total value in minor units.
func ValueLine(total uint64) string {
	return fmt.Sprintf("Value: $%d", total)
}

// GrowthLine describes the projected annual growth of an account, e.g. "Cash growth: £-677.97".
func GrowthLine(label string, a *pocket.Account, currency string) string {
	return fmt.Sprintf("%s growth: %s", label, pocket.FormatMajor(a.AnnualGrowth(), currency))
}
