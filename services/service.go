package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	privatRates "github.com/malusev998/privat-rates"
)

type Service struct {
	Fetcher privatRates.Fetcher
	Logger  *zap.Logger
	Now     func() time.Time
}

func (s Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}

// Report fetches the last days rates and keeps only the filtered currencies.
func (s Service) Report(ctx context.Context, days int, filter privatRates.CurrencyFilter) (privatRates.Report, error) {
	logger := s.Logger

	if logger == nil {
		logger = zap.NewNop()
	}

	logger = logger.With(zap.Stringer("run", uuid.New()))

	dates := privatRates.LastDays(s.now(), days)

	logger.Debug("fetching rates",
		zap.Int("days", days),
		zap.Strings("currencies", filter.Codes()),
	)

	responses, err := s.Fetcher.Fetch(ctx, dates)

	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}

	report := Normalize(responses, filter)

	logger.Debug("rates normalized", zap.Int("entries", len(report)))

	return report, nil
}
