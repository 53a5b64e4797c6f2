// Package pocket models a small personal portfolio: a reserved cash slot and
// equity holdings valued in integer minor units, purchases gated by the
// available cash, and scalar accounts projecting one year of compound growth.
//
// The main entry points are:
//   - Portfolio: the holding store, created with New and its options.
//   - Portfolio.Purchase: records the acquisition of an Equity after checking
//     that the cash holding can afford it.
//   - Portfolio.TotalValue: the sum of every holding's Value.
//   - Account: a labelled amount with an annual rate, see Account.AnnualGrowth.
//
// A portfolio can be persisted as a "book", a JSONL file with one holding per
// line, see EncodeBook and DecodeBook. This package is the foundation of the
// `pkt` command-line tool.
package pocket
