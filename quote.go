package pocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// QuoteSource locates the latest price of an equity in a JSON HTTP response.
//
// Path is a JSONPath expression selecting the price in major units, for instance
// "$.chart.result[0].meta.regularMarketPrice". When the expression selects a
// list, the first element is used.
type QuoteSource struct {
	URL  string
	Path string
}

// FetchQuote returns the price found at src, in major units.
func FetchQuote(ctx context.Context, client *http.Client, src QuoteSource) (decimal.Decimal, error) {
	var jobj any
	if err := jwget(ctx, client, src.URL, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error fetching quote: %w", err)
	}
	jval, err := jsonpath.Get(src.Path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error reading quote at %q: %w", src.Path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or a single answer.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return decimal.Zero, fmt.Errorf("error reading quote at %q: no match", src.Path)
		}
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("error reading quote at %q: %w", src.Path, err)
		}
		return d, nil
	case string:
		// some providers quote prices as strings
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("error reading quote at %q: %w", src.Path, err)
		}
		return d, nil
	}
	return decimal.Zero, fmt.Errorf("error reading quote at %q: not a number: %v", src.Path, jval)
}
