package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	privatRates "github.com/malusev998/privat-rates"
	"github.com/malusev998/privat-rates/services"
)

var today = privatRates.NewDate(time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC))

func rate(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func defaultFilter(extra ...string) privatRates.CurrencyFilter {
	return privatRates.NewCurrencyFilter(privatRates.DefaultCurrencies, extra...)
}

func TestPickRate(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	values := []struct {
		consumer       decimal.NullDecimal
		nationalBank   decimal.NullDecimal
		expectedSource privatRates.RateSource
		expectedValue  decimal.NullDecimal
	}{
		{rate("27.5"), rate("27.1"), privatRates.ConsumerSource, rate("27.5")},
		{decimal.NullDecimal{}, rate("27.1"), privatRates.NationalBankSource, rate("27.1")},
		{rate("0"), rate("27.1"), privatRates.NationalBankSource, rate("27.1")},
		{decimal.NullDecimal{}, decimal.NullDecimal{}, privatRates.NationalBankSource, decimal.NullDecimal{}},
	}

	for _, value := range values {
		source, picked := services.PickRate(value.consumer, value.nationalBank)
		assert.Equal(value.expectedSource, source)
		assert.Equal(value.expectedValue, picked)
	}
}

func TestNormalize_ConsumerAndNationalBank(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	responses := []privatRates.DatedResponse{
		{
			Date: today,
			Response: privatRates.RawRateResponse{
				ExchangeRate: []privatRates.RateRecord{
					{Currency: "USD", SaleRate: rate("27.5"), PurchaseRate: rate("27.0")},
					{Currency: "EUR", SaleRateNB: rate("30.1"), PurchaseRateNB: rate("29.8")},
				},
			},
		},
	}

	report := services.Normalize(responses, defaultFilter())

	assert.Len(report, 1)
	assert.False(report[0].NotFound)
	assert.Equal([]string{"USD", "EUR"}, report[0].Currencies())

	data, err := report.JSON()
	assert.NoError(err)
	assert.JSONEq(`[{"17.10.2026": {
		"USD": {"sale": 27.5, "purchase": 27.0},
		"EUR": {"saleNB": 30.1, "purchaseNB": 29.8}
	}}]`, string(data))
}

func TestNormalize_MixedSources(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	responses := []privatRates.DatedResponse{
		{
			Date: today,
			Response: privatRates.RawRateResponse{
				ExchangeRate: []privatRates.RateRecord{
					{Currency: "USD", SaleRate: rate("41.5"), SaleRateNB: rate("41.2"), PurchaseRateNB: rate("41.2")},
				},
			},
		},
	}

	quote, ok := services.Normalize(responses, defaultFilter())[0].Quote("USD")

	assert.True(ok)
	assert.Equal(privatRates.ConsumerSource, quote.SaleSource)
	assert.Equal(privatRates.NationalBankSource, quote.PurchaseSource)
	assert.Equal(rate("41.5"), quote.Sale)
	assert.Equal(rate("41.2"), quote.Purchase)
}

func TestNormalize_ErrorStatus(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	yesterday := privatRates.Date{Time: today.AddDate(0, 0, -1)}
	responses := []privatRates.DatedResponse{
		{Date: today, Response: privatRates.RawRateResponse{Status: privatRates.StatusError}},
		{Date: yesterday, Response: privatRates.RawRateResponse{}},
	}

	report := services.Normalize(responses, defaultFilter())

	assert.Len(report, 2)
	assert.True(report[0].NotFound)
	assert.False(report[1].NotFound)
	assert.Empty(report[1].Currencies())

	data, err := report.JSON()
	assert.NoError(err)
	assert.JSONEq(`[{"17.10.2026": "Not found"}, {"16.10.2026": {}}]`, string(data))
}

func TestNormalize_Filter(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	responses := []privatRates.DatedResponse{
		{
			Date: today,
			Response: privatRates.RawRateResponse{
				ExchangeRate: []privatRates.RateRecord{
					{Currency: "UAH", SaleRateNB: rate("1"), PurchaseRateNB: rate("1")},
					{Currency: "GBP", SaleRate: rate("52"), PurchaseRate: rate("51")},
					{Currency: "PLN", SaleRate: rate("10.4"), PurchaseRate: rate("10.1")},
					{Currency: "USD", SaleRate: rate("41.5"), PurchaseRate: rate("40.9")},
				},
			},
		},
	}

	withDefaults := services.Normalize(responses, defaultFilter())[0]
	assert.Equal([]string{"USD"}, withDefaults.Currencies())

	withPLN := services.Normalize(responses, defaultFilter("pln"))[0]
	assert.Equal([]string{"PLN", "USD"}, withPLN.Currencies())

	_, ok := withPLN.Quote("GBP")
	assert.False(ok)
}

func TestNormalize_LastDuplicateWins(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	responses := []privatRates.DatedResponse{
		{
			Date: today,
			Response: privatRates.RawRateResponse{
				ExchangeRate: []privatRates.RateRecord{
					{Currency: "USD", SaleRate: rate("41.5"), PurchaseRate: rate("40.9")},
					{Currency: "EUR", SaleRate: rate("45.5"), PurchaseRate: rate("44.9")},
					{Currency: "USD", SaleRateNB: rate("41.2"), PurchaseRateNB: rate("41.2")},
				},
			},
		},
	}

	entry := services.Normalize(responses, defaultFilter("usd", "USD"))[0]
	quote, ok := entry.Quote("USD")

	assert.True(ok)
	assert.Equal([]string{"USD", "EUR"}, entry.Currencies())
	assert.Equal(privatRates.NationalBankSource, quote.SaleSource)
	assert.Equal(rate("41.2"), quote.Sale)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	responses := []privatRates.DatedResponse{
		{Date: today, Response: privatRates.RawRateResponse{Status: privatRates.StatusError}},
		{
			Date: privatRates.Date{Time: today.AddDate(0, 0, -1)},
			Response: privatRates.RawRateResponse{
				ExchangeRate: []privatRates.RateRecord{
					{Currency: "EUR", SaleRate: rate("45.5"), PurchaseRateNB: rate("45.1")},
				},
			},
		},
	}
	filter := defaultFilter()

	first, err := services.Normalize(responses, filter).JSON()
	assert.NoError(err)

	second, err := services.Normalize(responses, filter).JSON()
	assert.NoError(err)

	assert.Equal(string(first), string(second))
}
