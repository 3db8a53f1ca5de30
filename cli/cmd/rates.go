package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	privatRates "github.com/malusev998/privat-rates"
	"github.com/malusev998/privat-rates/fetchers"
	"github.com/malusev998/privat-rates/logger"
	"github.com/malusev998/privat-rates/services"
)

func ratesCobraCommand(config *Config, v *viper.Viper) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		params, err := privatRates.ResolveParameters(append([]string{cmd.Name()}, args...))

		if err != nil {
			return err
		}

		s, err := getSettings(v)

		if err != nil {
			return err
		}

		log, err := logger.New(s.Debug)

		if err != nil {
			return err
		}

		defer func() { _ = log.Sync() }()

		ctx := config.Ctx

		if ctx == nil {
			ctx = context.Background()
		}

		service := services.Service{
			Fetcher: fetchers.NewPrivatBankFetcher(fetchers.PrivatBankConfig{
				BaseConfig: fetchers.BaseConfig{URL: s.URL},
				Timeout:    s.Timeout,
				Transport:  config.Transport,
				Logger:     log,
			}),
			Logger: log,
			Now:    config.Now,
		}

		filter := privatRates.NewCurrencyFilter(s.Currencies, params.Currencies...)

		log.Debug("parameters resolved",
			zap.Int("days", params.Days),
			zap.Bool("currencyList", params.Kind == privatRates.ParsedAsCurrencyList),
		)

		report, err := service.Report(ctx, params.Days, filter)

		if err != nil {
			return err
		}

		out, err := report.JSON()

		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return err
	}
}
