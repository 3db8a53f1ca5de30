package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	privatRates "github.com/malusev998/privat-rates"
)

type PrivatBankFetcher struct {
	URL       string
	Timeout   time.Duration
	Transport http.RoundTripper
	Logger    *zap.Logger
}

func (p *PrivatBankFetcher) log() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}

	return p.Logger
}

// newClient returns a client with its own connection pool, released by the
// caller once the batch is done.
func (p *PrivatBankFetcher) newClient() *http.Client {
	transport := p.Transport

	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &http.Client{
		Transport: transport,
		Timeout:   p.Timeout,
	}
}

func (p *PrivatBankFetcher) fetchDate(
	ctx context.Context,
	client *http.Client,
	date privatRates.Date,
) (privatRates.RawRateResponse, error) {
	req, err := getData(ctx, p.URL, date)

	if err != nil {
		return privatRates.RawRateResponse{}, fmt.Errorf("new request: %w", err)
	}

	p.log().Debug("requesting rates", zap.Stringer("date", date), zap.String("url", req.URL.String()))

	res, err := client.Do(req)

	if err != nil {
		return privatRates.RawRateResponse{}, &privatRates.ConnectionError{Date: date, Err: err}
	}

	defer func() { _ = res.Body.Close() }()

	contentType := res.Header.Get("Content-Type")

	p.log().Debug("rates response",
		zap.Stringer("date", date),
		zap.Int("status", res.StatusCode),
		zap.String("contentType", contentType),
	)

	if !isJSON(contentType) {
		return privatRates.RawRateResponse{}, &privatRates.ContentError{
			Date:        date,
			ContentType: contentType,
			Err:         privatRates.ErrNotJSON,
		}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))

	if err != nil {
		return privatRates.RawRateResponse{}, &privatRates.ConnectionError{Date: date, Err: err}
	}

	var data privatRates.RawRateResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return privatRates.RawRateResponse{}, &privatRates.ContentError{
			Date:        date,
			ContentType: contentType,
			Err:         err,
		}
	}

	if !data.Date.IsZero() && data.Date.String() != date.String() {
		p.log().Debug("rates dated differently than requested",
			zap.Stringer("date", date),
			zap.Stringer("responseDate", data.Date),
		)
	}

	if data.IsError() {
		p.log().Debug("no rates for date", zap.Stringer("date", date), zap.String("message", data.Message))
	}

	return data, nil
}

// Fetch requests every date concurrently. The first failure cancels the
// remaining requests and no partial result is returned. Results follow the
// order of dates.
func (p *PrivatBankFetcher) Fetch(ctx context.Context, dates []privatRates.Date) ([]privatRates.DatedResponse, error) {
	if len(dates) == 0 {
		return nil, privatRates.ErrNoDatesRequested
	}

	client := p.newClient()
	defer client.CloseIdleConnections()

	results := make([]privatRates.DatedResponse, len(dates))
	g, gctx := errgroup.WithContext(ctx)

	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			data, err := p.fetchDate(gctx, client, date)
			if err != nil {
				return err
			}

			results[i] = privatRates.DatedResponse{Date: date, Response: data}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.log().Debug("fetch aborted", zap.Error(err))
		return nil, err
	}

	return results, nil
}
