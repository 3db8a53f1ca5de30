package privat_rates

import "github.com/shopspring/decimal"

const StatusError = "error"

type (
	RateRecord struct {
		Currency       string              `json:"currency"`
		SaleRate       decimal.NullDecimal `json:"saleRate"`
		SaleRateNB     decimal.NullDecimal `json:"saleRateNB"`
		PurchaseRate   decimal.NullDecimal `json:"purchaseRate"`
		PurchaseRateNB decimal.NullDecimal `json:"purchaseRateNB"`
	}

	RawRateResponse struct {
		Status       string       `json:"status,omitempty"`
		Message      string       `json:"message,omitempty"`
		Date         Date         `json:"date"`
		ExchangeRate []RateRecord `json:"exchangeRate,omitempty"`
	}

	DatedResponse struct {
		Date     Date
		Response RawRateResponse
	}
)

func (r RawRateResponse) IsError() bool {
	return r.Status == StatusError
}
