package privat_rates

import "strconv"

const (
	MinDays = 1
	MaxDays = 10
)

type ParseKind int

const (
	// ParsedAsCount means the first argument was the day count and the
	// currencies start at the second one.
	ParsedAsCount ParseKind = iota
	// ParsedAsCurrencyList means the first argument was not a number, so
	// every argument is a currency and the day count defaults to one.
	ParsedAsCurrencyList
)

type Parameters struct {
	Kind       ParseKind
	Days       int
	Currencies []string
}

// ResolveParameters interprets argv (program name first) as
// [n] [currency...].
func ResolveParameters(argv []string) (Parameters, error) {
	if len(argv) <= 1 {
		return Parameters{Kind: ParsedAsCount, Days: MinDays}, nil
	}

	params := Parameters{
		Kind:       ParsedAsCount,
		Currencies: argv[2:],
	}

	n, err := strconv.Atoi(argv[1])
	if err != nil {
		params = Parameters{
			Kind:       ParsedAsCurrencyList,
			Days:       MinDays,
			Currencies: argv[1:],
		}
	} else {
		params.Days = n
	}

	if params.Days < MinDays || params.Days > MaxDays {
		return Parameters{}, &ParameterError{Value: argv[1], Err: ErrDaysOutOfRange}
	}

	currencies := make([]string, len(params.Currencies))
	copy(currencies, params.Currencies)
	params.Currencies = currencies

	return params, nil
}
