package privat_rates

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "02.01.2006"

// Date is a calendar day in the local zone, rendered as dd.mm.yyyy.
type Date struct{ time.Time }

func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}

	return NewDate(t), nil
}

// LastDays returns n days ending at now, most recent first.
func LastDays(now time.Time, n int) []Date {
	today := NewDate(now)
	dates := make([]Date, 0, n)

	for i := 0; i < n; i++ {
		dates = append(dates, Date{Time: today.AddDate(0, 0, -i)})
	}

	return dates
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), "\"")

	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
