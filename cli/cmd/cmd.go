package cmd

import (
	"context"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	privatRates "github.com/malusev998/privat-rates"
	"github.com/malusev998/privat-rates/fetchers"
)

const envPrefix = "PRIVAT_RATES"

var negativeNumber = regexp.MustCompile(`^-\d+$`)

type (
	Config struct {
		Ctx context.Context
		// Transport and Now are replaced in tests, nil means the defaults.
		Transport http.RoundTripper
		Now       func() time.Time
	}
)

func newRootCommand(config *Config, args []string) *cobra.Command {
	var configFile string

	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "privat-rates [n] [currency...]",
		Short:         "PrivatBank exchange rates for the last n days",
		Version:       "v1.0.0",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, configFile)
		},
		RunE: ratesCobraCommand(config, v),
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("debug", "d", false, "Debug flag")
	flags.StringVar(&configFile, "config", "", "Path to config file")
	flags.String("url", fetchers.PrivatBankURL, "Exchange rates endpoint")
	flags.Duration("timeout", 0, "Timeout of a single request, 0 means none")
	flags.StringSlice("currencies", privatRates.DefaultCurrencies, "Currencies always included in the report")

	_ = v.BindPFlag("debug", flags.Lookup("debug"))
	_ = v.BindPFlag("url", flags.Lookup("url"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = v.BindPFlag("currencies", flags.Lookup("currencies"))

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// cobra reads os.Args when given nil
	rootCmd.SetArgs(append([]string{}, positionalArgs(flags, args)...))

	return rootCmd
}

// positionalArgs puts "--" in front of the first negative number that is not
// a flag value, so "-1" reaches the day count check instead of being parsed
// as a shorthand flag.
func positionalArgs(flags *pflag.FlagSet, args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}

		if !negativeNumber.MatchString(arg) || (i > 0 && takesValue(flags, args[i-1])) {
			continue
		}

		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")

		return append(out, args[i:]...)
	}

	return args
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(flags *pflag.FlagSet, arg string) bool {
	if !strings.HasPrefix(arg, "-") || strings.Contains(arg, "=") {
		return false
	}

	var flag *pflag.Flag

	if name := strings.TrimPrefix(arg, "--"); name != arg {
		flag = flags.Lookup(name)
	} else if len(arg) == 2 {
		flag = flags.ShorthandLookup(arg[1:])
	}

	return flag != nil && flag.NoOptDefVal == ""
}

func Execute(config *Config) error {
	return newRootCommand(config, os.Args[1:]).Execute()
}
