package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings are the tunables that are not per-operator: remote endpoints and
// the HTTP client budget. Values come from an optional settings file with
// SECTHING_* environment overrides on top.
type Settings struct {
	FTDBaseURL   string        `mapstructure:"ftd_base_url"`
	SwapsBaseURL string        `mapstructure:"swaps_base_url"`
	EdgarBaseURL string        `mapstructure:"edgar_base_url"`
	HTTPTimeout  time.Duration `mapstructure:"http_timeout"`
}

// LoadSettings reads settings from path when it is non-empty, otherwise
// returns the defaults (still honouring environment overrides).
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("ftd_base_url", "https://www.sec.gov/files/data/fails-deliver-data")
	v.SetDefault("swaps_base_url", "https://pddata.dtcc.com/ppd/api/report/cumulative/sec")
	v.SetDefault("edgar_base_url", "https://www.sec.gov/Archives/edgar/full-index")
	v.SetDefault("http_timeout", "60s")

	v.SetEnvPrefix("SECTHING")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &s, nil
}
