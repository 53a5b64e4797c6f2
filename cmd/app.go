// Package cmd implements the pkt command-line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pocket"
	"github.com/google/subcommands"
)

// Environment variables providing the defaults of the global flags. They are
// also passed to extensions.
const (
	EnvBookFile   = "PKT_BOOK_FILE"
	EnvCurrency   = "PKT_CURRENCY"
	EnvSettlement = "PKT_SETTLEMENT"
	EnvVerbose    = "PKT_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	bookFile        = "book.jsonl"
	defaultCurrency = pocket.DefaultCurrency
	settlement      = pocket.SettleCash.String()
	Verbose         = false
)

// output streams, tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// RegisterFlags declares the global flags on f. Their defaults are read from
// the environment, so call it after the environment is loaded.
func RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&bookFile, "book-file", envString(EnvBookFile, bookFile), "Path to the book file (JSONL format)")
	f.StringVar(&defaultCurrency, "currency", envString(EnvCurrency, defaultCurrency), "Currency of the cash holding when creating a book")
	f.StringVar(&settlement, "settlement", envString(EnvSettlement, settlement), `Purchase settlement: "cash" debits the cost from cash, "none" only records the shares`)
	f.BoolVar(&Verbose, "v", envBool(EnvVerbose, Verbose), "Verbose logging")
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return b
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&initCmd{}, "book")
	c.Register(&depositCmd{}, "book")
	c.Register(&buyCmd{}, "book")
	c.Register(&updatePriceCmd{}, "book")

	c.Register(&valueCmd{}, "reports")
	c.Register(&holdingCmd{}, "reports")
	c.Register(&growthCmd{}, "reports")
	c.Register(&demoCmd{}, "reports")
}

// Settlement returns the settlement policy selected by the global flag.
func Settlement() (pocket.Settlement, error) {
	return pocket.ParseSettlement(settlement)
}

// DecodeBook decodes the portfolio from the app book file. A missing file is
// an empty portfolio in the default currency.
func DecodeBook() (*pocket.Portfolio, error) {
	s, err := Settlement()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, book %q does not exist, using an empty portfolio instead", bookFile)
		return pocket.New(pocket.WithCurrency(defaultCurrency), pocket.WithSettlement(s)), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return pocket.DecodeBook(bookFile, f, pocket.WithSettlement(s))
}

// EncodeBook writes the portfolio into the app book file. The file is
// replaced at once so a failure never leaves a truncated book.
func EncodeBook(p *pocket.Portfolio) error {
	tmp, err := os.CreateTemp(filepath.Dir(bookFile), ".book-*.jsonl")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := pocket.EncodeBook(tmp, p); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot encode book: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), bookFile)
}

// saveBook encodes the book and reports errors the way commands do.
func saveBook(p *pocket.Portfolio) subcommands.ExitStatus {
	if err := EncodeBook(p); err != nil {
		fmt.Fprintf(stderr, "Error writing book %q: %v\n", bookFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Printf("cannot render markdown: %v", err)
	fmt.Fprint(stdout, md)
}

// toUint32 checks that a flag value fits the 32 bits quantities and amounts.
func toUint32(name string, v uint64) (uint32, error) {
	if v > 1<<32-1 {
		return 0, fmt.Errorf("-%s %d: %w", name, v, pocket.ErrOverflow)
	}
	return uint32(v), nil
}
