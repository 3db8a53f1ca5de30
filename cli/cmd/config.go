package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type settings struct {
	URL        string
	Timeout    time.Duration
	Debug      bool
	Currencies []string
}

func loadConfig(v *viper.Viper, configFile string) error {
	if configFile == "" {
		return nil
	}

	absolutePath, err := filepath.Abs(configFile)

	if err != nil {
		return fmt.Errorf("config path %s: %w", configFile, err)
	}

	v.SetConfigFile(absolutePath)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error while reading in the config file: %w", err)
	}

	return nil
}

func getSettings(v *viper.Viper) (settings, error) {
	timeout := v.GetDuration("timeout")

	if timeout < 0 {
		return settings{}, fmt.Errorf("timeout can't be negative: %s", timeout)
	}

	return settings{
		URL:        v.GetString("url"),
		Timeout:    timeout,
		Debug:      v.GetBool("debug"),
		Currencies: v.GetStringSlice("currencies"),
	}, nil
}
