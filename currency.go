package privat_rates

import (
	"context"
	"strings"
)

type (
	Fetcher interface {
		Fetch(ctx context.Context, dates []Date) ([]DatedResponse, error)
	}

	// CurrencyFilter keeps the requested currency codes in request order.
	// Duplicates are allowed, only membership matters.
	CurrencyFilter struct {
		codes []string
		set   map[string]struct{}
	}
)

var DefaultCurrencies = []string{"EUR", "USD"}

func NewCurrencyFilter(defaults []string, extra ...string) CurrencyFilter {
	filter := CurrencyFilter{
		codes: make([]string, 0, len(defaults)+len(extra)),
		set:   make(map[string]struct{}, len(defaults)+len(extra)),
	}

	for _, c := range defaults {
		filter.add(c)
	}

	for _, c := range extra {
		filter.add(c)
	}

	return filter
}

func (f *CurrencyFilter) add(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	f.codes = append(f.codes, code)
	f.set[code] = struct{}{}
}

func (f CurrencyFilter) Contains(code string) bool {
	_, ok := f.set[code]
	return ok
}

func (f CurrencyFilter) Codes() []string {
	codes := make([]string, len(f.codes))
	copy(codes, f.codes)

	return codes
}
