package privat_rates

type (
	// RateSource tells whether a value is the retail (consumer) rate or the
	// National Bank reference rate.
	RateSource string
	Side       string
)

const (
	ConsumerSource     RateSource = "consumer"
	NationalBankSource RateSource = "nb"

	SaleSide     Side = "sale"
	PurchaseSide Side = "purchase"
)

// Key is the report key for a value of this source on the given side,
// e.g. "sale" or "purchaseNB".
func (s RateSource) Key(side Side) string {
	if s == NationalBankSource {
		return string(side) + "NB"
	}

	return string(side)
}
