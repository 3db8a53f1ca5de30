package fetchers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type (
	BaseConfig struct {
		URL string
	}
	PrivatBankConfig struct {
		BaseConfig
		// Timeout of a single request, zero means none.
		Timeout   time.Duration
		Transport http.RoundTripper
		Logger    *zap.Logger
	}
)

func NewPrivatBankFetcher(config PrivatBankConfig) *PrivatBankFetcher {
	url := config.URL

	if url == "" {
		url = PrivatBankURL
	}

	logger := config.Logger

	if logger == nil {
		logger = zap.NewNop()
	}

	return &PrivatBankFetcher{
		URL:       url,
		Timeout:   config.Timeout,
		Transport: config.Transport,
		Logger:    logger,
	}
}
