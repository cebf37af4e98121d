package config

import (
	"time"
	// zone database for containers without one
	_ "time/tzdata"
)

const defaultCurrency = "PKR"

type AppConfig struct {
	CurrencyLabel string `yaml:"currency" env:"APP_CURRENCY"`
	Timezone      string `yaml:"timezone" env:"APP_TIMEZONE"`
}

// Currency is a display label only, amounts are never converted.
func (s *AppConfig) Currency() string {
	if s.CurrencyLabel == "" {
		return defaultCurrency
	}
	return s.CurrencyLabel
}

// Location is used to resolve "today" and parse dates, UTC when unset or unknown.
func (s *AppConfig) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
