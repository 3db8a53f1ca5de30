package cmd

import (
	"errors"

	privatRates "github.com/malusev998/privat-rates"
)

const (
	ExitFailure      = -1
	ExitUnclassified = 1
)

// Diagnose turns an error returned by Execute into the one line printed to
// the user and the process exit code.
func Diagnose(err error) (string, int) {
	var (
		paramErr      *privatRates.ParameterError
		connectionErr *privatRates.ConnectionError
		contentErr    *privatRates.ContentError
	)

	switch {
	case errors.As(err, &paramErr):
		return "ValueError: " + paramErr.Error(), ExitFailure
	case errors.As(err, &connectionErr):
		return "Connection error: " + connectionErr.Error(), ExitFailure
	case errors.As(err, &contentErr):
		return "Content error: " + contentErr.Error(), ExitFailure
	}

	return "Error: " + err.Error(), ExitUnclassified
}
