package privat_rates

import (
	"errors"
	"fmt"
)

var (
	ErrDaysOutOfRange   = errors.New("The first parameter to script can't be outside the range 1 - 10")
	ErrNotJSON          = errors.New("response is not JSON")
	ErrNoDatesRequested = errors.New("no dates requested")
)

type (
	ParameterError struct {
		Value string
		Err   error
	}

	// ConnectionError is a transport failure while reaching the API.
	ConnectionError struct {
		Date Date
		Err  error
	}

	// ContentError is a response body that could not be read as JSON.
	ContentError struct {
		Date        Date
		ContentType string
		Err         error
	}
)

func (e *ParameterError) Error() string { return e.Err.Error() }

func (e *ParameterError) Unwrap() error { return e.Err }

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot fetch rates for %s: %v", e.Date, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ContentError) Error() string {
	if e.ContentType == "" {
		return fmt.Sprintf("invalid content for %s: %v", e.Date, e.Err)
	}

	return fmt.Sprintf("invalid content for %s (%s): %v", e.Date, e.ContentType, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }
