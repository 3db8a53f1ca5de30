package services

import (
	"github.com/shopspring/decimal"

	privatRates "github.com/malusev998/privat-rates"
)

// PickRate prefers the consumer rate and falls back to the National Bank
// rate when the consumer one is missing or zero.
func PickRate(consumer, nationalBank decimal.NullDecimal) (privatRates.RateSource, decimal.NullDecimal) {
	if consumer.Valid && !consumer.Decimal.IsZero() {
		return privatRates.ConsumerSource, consumer
	}

	return privatRates.NationalBankSource, nationalBank
}

func NewQuote(record privatRates.RateRecord) privatRates.Quote {
	saleSource, sale := PickRate(record.SaleRate, record.SaleRateNB)
	purchaseSource, purchase := PickRate(record.PurchaseRate, record.PurchaseRateNB)

	return privatRates.Quote{
		Sale:           sale,
		SaleSource:     saleSource,
		Purchase:       purchase,
		PurchaseSource: purchaseSource,
	}
}

// Normalize builds one report entry per response, in the same order.
func Normalize(responses []privatRates.DatedResponse, filter privatRates.CurrencyFilter) privatRates.Report {
	report := make(privatRates.Report, 0, len(responses))

	for _, res := range responses {
		if res.Response.IsError() {
			report = append(report, privatRates.NotFoundDateReport(res.Date))
			continue
		}

		entry := privatRates.NewDateReport(res.Date)

		for _, record := range res.Response.ExchangeRate {
			if !filter.Contains(record.Currency) {
				continue
			}

			entry.Set(record.Currency, NewQuote(record))
		}

		report = append(report, entry)
	}

	return report
}
