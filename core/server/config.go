package server

import (
	"fmt"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Timezone is the IANA zone in which specials and mealtimes are evaluated.
	Timezone string `mapstructure:"timezone" default:"UTC"`
	// PageLimit is the default page size for menu listings.
	PageLimit int `mapstructure:"page_limit" default:"20" validate:"gte=0,lte=100"`
}

// DefaultPageLimit is used when the configured page size is not positive.
const DefaultPageLimit = 20

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// EffectivePageLimit returns PageLimit, or DefaultPageLimit when unset.
func (c Config) EffectivePageLimit() int {
	if c.PageLimit <= 0 {
		return DefaultPageLimit
	}
	return c.PageLimit
}
