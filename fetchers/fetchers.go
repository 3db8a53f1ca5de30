package fetchers

import (
	"context"
	"mime"
	"net/http"
	"strings"

	privatRates "github.com/malusev998/privat-rates"
)

const (
	PrivatBankURL = "https://api.privatbank.ua/p24api/exchange_rates"

	maxBodyBytes = 1 << 20
)

func getData(ctx context.Context, url string, date privatRates.Date) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	q := req.URL.Query()
	q.Set("date", date.String())
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
