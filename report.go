package privat_rates

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const NotFound = "Not found"

type (
	Quote struct {
		Sale           decimal.NullDecimal
		SaleSource     RateSource
		Purchase       decimal.NullDecimal
		PurchaseSource RateSource
	}

	// DateReport holds the rates of one day. Currencies keep the order in
	// which they were first seen, a repeated currency overwrites the value.
	DateReport struct {
		Date     Date
		NotFound bool
		order    []string
		quotes   map[string]Quote
	}

	Report []DateReport
)

func NewDateReport(date Date) DateReport {
	return DateReport{
		Date:   date,
		quotes: make(map[string]Quote),
	}
}

func NotFoundDateReport(date Date) DateReport {
	return DateReport{Date: date, NotFound: true}
}

func (r *DateReport) Set(currency string, quote Quote) {
	if r.quotes == nil {
		r.quotes = make(map[string]Quote)
	}

	if _, exists := r.quotes[currency]; !exists {
		r.order = append(r.order, currency)
	}

	r.quotes[currency] = quote
}

func (r DateReport) Quote(currency string) (Quote, bool) {
	q, ok := r.quotes[currency]
	return q, ok
}

func (r DateReport) Currencies() []string {
	currencies := make([]string, len(r.order))
	copy(currencies, r.order)

	return currencies
}

func (r DateReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	buf.WriteString(strconv.Quote(r.Date.String()))
	buf.WriteByte(':')

	if r.NotFound {
		buf.WriteString(strconv.Quote(NotFound))
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}

	buf.WriteByte('{')
	for i, currency := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}

		quote, err := r.quotes[currency].MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.WriteString(strconv.Quote(currency))
		buf.WriteByte(':')
		buf.Write(quote)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}

func (q Quote) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	writeRate(&buf, q.SaleSource.Key(SaleSide), q.Sale)
	buf.WriteByte(',')
	writeRate(&buf, q.PurchaseSource.Key(PurchaseSide), q.Purchase)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func writeRate(buf *bytes.Buffer, key string, value decimal.NullDecimal) {
	buf.WriteString(strconv.Quote(key))
	buf.WriteByte(':')

	if !value.Valid {
		buf.WriteString("null")
		return
	}

	buf.WriteString(formatRate(value.Decimal))
}

// formatRate keeps a fractional part on values that had one, so 27.0 stays
// 27.0 and 27 stays 27.
func formatRate(d decimal.Decimal) string {
	s := d.String()

	if d.Exponent() < 0 && !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// JSON renders the report with four space indentation.
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}
