package cmd

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	privatRates "github.com/malusev998/privat-rates"
)

func TestDiagnose(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	date := privatRates.NewDate(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))

	values := []struct {
		err     error
		message string
		code    int
	}{
		{
			&privatRates.ParameterError{Value: "0", Err: privatRates.ErrDaysOutOfRange},
			"ValueError: The first parameter to script can't be outside the range 1 - 10",
			ExitFailure,
		},
		{
			fmt.Errorf("fetch rates: %w", &privatRates.ConnectionError{Date: date, Err: errors.New("dial tcp: connection refused")}),
			"Connection error: cannot fetch rates for 17.10.2026: dial tcp: connection refused",
			ExitFailure,
		},
		{
			&privatRates.ContentError{Date: date, ContentType: "text/html", Err: privatRates.ErrNotJSON},
			"Content error: invalid content for 17.10.2026 (text/html): response is not JSON",
			ExitFailure,
		},
		{
			errors.New("unknown flag: --foo"),
			"Error: unknown flag: --foo",
			ExitUnclassified,
		},
	}

	for _, value := range values {
		message, code := Diagnose(value.err)
		asserts.Equal(value.message, message)
		asserts.Equal(value.code, code)
	}
}
