package pocket

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/pocket/date"
)

// A book persists a portfolio as JSONL, one holding per line, cash first:
//
//	{"asset":"cash","id":0,"currency":"GBP","owned":750000}
//	{"asset":"equity","id":1,"isin":"US0378331005","market":"XNAS","name":"Apple Inc.","ticker":"AAPL","price":5000,"on":"2025-01-02","owned":50}
//
// The settlement policy is not part of the book, it is a choice of the caller.

// MarshalJSON implements json.Marshaler and produces a book line.
func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	switch a := h.Asset.(type) {
	case Cash:
		w.Append("asset", a.Kind())
		w.Append("id", CashID)
		w.Append("currency", a.Currency)
	case Equity:
		// what DecodeBook would refuse is never written.
		if err := ValidateISIN(a.ISIN); err != nil {
			return nil, fmt.Errorf("equity %q: invalid ISIN: %w", a.Ticker, err)
		}
		w.Append("asset", a.Kind())
		w.Append("id", a.ID)
		w.Append("isin", a.ISIN)
		w.Optional("market", a.Market)
		w.Optional("name", a.Name)
		w.Append("ticker", a.Ticker)
		w.Append("price", a.Price.Amount)
		w.Optional("on", a.Price.On)
	default:
		return nil, fmt.Errorf("unsupported asset type %T", h.Asset)
	}
	w.Append("owned", h.Owned)
	return w.MarshalJSON()
}

// EncodeBook writes the portfolio holdings to w, one JSON object per line.
// Nothing is written if a holding cannot be encoded.
func EncodeBook(w io.Writer, p *Portfolio) error {
	var buf bytes.Buffer
	for id, h := range p.Holdings() {
		line, err := json.Marshal(h)
		if err != nil {
			return fmt.Errorf("cannot encode asset %d: %w", id, err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// jholding is a book line as read by the json parser.
type jholding struct {
	Asset    AssetKind `json:"asset"`
	ID       AssetID   `json:"id"`
	Currency string    `json:"currency"`
	ISIN     string    `json:"isin"`
	Market   string    `json:"market"`
	Name     string    `json:"name"`
	Ticker   string    `json:"ticker"`
	Price    uint32    `json:"price"`
	On       date.Date `json:"on"`
	Owned    uint32    `json:"owned"`
}

// DecodeBook reads a book from r. The first holding must be the cash one.
// filename is for error messages only. opts configure the returned portfolio,
// the cash balance and currency always come from the book.
func DecodeBook(filename string, r io.Reader, opts ...Option) (*Portfolio, error) {
	var p *Portfolio
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var jh jholding
		dec := json.NewDecoder(bytes.NewReader(line))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&jh); err != nil {
			return nil, fmt.Errorf("format error %s:%d: %w", filename, i, err)
		}

		switch jh.Asset {
		case KindCash:
			if p != nil {
				return nil, fmt.Errorf("format error %s:%d: cash is already defined", filename, i)
			}
			if jh.ID != CashID {
				return nil, fmt.Errorf("format error %s:%d: cash must have id %d, got %d", filename, i, CashID, jh.ID)
			}
			if err := ValidateCurrency(jh.Currency); err != nil {
				return nil, fmt.Errorf("format error %s:%d: %w", filename, i, err)
			}
			p = New(append(slices.Clip(opts), WithCash(jh.Owned), WithCurrency(jh.Currency))...)

		case KindEquity:
			if p == nil {
				return nil, fmt.Errorf("format error %s:%d: the first holding must be cash", filename, i)
			}
			eq, err := NewEquity(jh.ID, jh.ISIN, jh.Market, jh.Name, jh.Ticker, Price{Amount: jh.Price, On: jh.On})
			if err != nil {
				return nil, fmt.Errorf("format error %s:%d: %w", filename, i, err)
			}
			if err := p.insert(Holding{Asset: eq, Owned: jh.Owned}); err != nil {
				return nil, fmt.Errorf("format error %s:%d: %w", filename, i, err)
			}

		default:
			return nil, fmt.Errorf("format error %s:%d: unknown asset kind %q", filename, i, jh.Asset)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filename, err)
	}
	if p == nil {
		return nil, fmt.Errorf("format error %s: missing cash holding", filename)
	}
	return p, nil
}
