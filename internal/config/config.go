package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/i474232898/weather-report/internal/weather"
)

var validate = validator.New()

type AppConfig struct {
	// RawSources is the comma-separated WEATHER_SOURCES list. Each entry is
	// either "name=location" or a bare location.
	RawSources []string `envconfig:"WEATHER_SOURCES"`

	// Sources is derived from RawSources.
	Sources []weather.SourceSpec `ignored:"true" validate:"dive"`

	// RefreshInterval controls how often every source is reloaded.
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"15m" validate:"gt=0"`

	// HTTPTimeout bounds each outbound request of remote sources.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`

	// In-memory store retention.
	StoreMaxHistory int           `envconfig:"STORE_MAX_HISTORY" default:"96" validate:"gte=0"` // max number of reports per source (0 = unlimited)
	StoreMaxAge     time.Duration `envconfig:"STORE_MAX_AGE" default:"24h" validate:"gte=0"`    // max age of reports (0 = unlimited)

	Port string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
}

// Load reads configuration from environment (and an optional .env file) with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	srcs, err := parseSources(cfg.RawSources)
	if err != nil {
		return nil, err
	}
	cfg.Sources = srcs

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func parseSources(raw []string) ([]weather.SourceSpec, error) {
	var specs []weather.SourceSpec
	seen := make(map[string]bool)
	for _, entry := range raw {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		spec := weather.SourceSpec{Location: entry}
		if name, loc, ok := strings.Cut(entry, "="); ok && isPlainName(name) {
			spec.Name = strings.TrimSpace(name)
			spec.Location = strings.TrimSpace(loc)
		} else {
			spec.Name = defaultSourceName(entry)
		}

		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate source name %q", spec.Name)
		}
		seen[spec.Name] = true
		specs = append(specs, spec)
	}

	return specs, nil
}

// isPlainName reports whether s can be a source name rather than the start of
// a path or URL, so "https://host/x.csv?v=2" is not split at its query.
func isPlainName(s string) bool {
	return !strings.ContainsAny(s, `/\:?#`)
}

// defaultSourceName derives a name from the last path element without extension,
// so "data/weather.csv" and "https://host/x/weather.csv" both become "weather".
func defaultSourceName(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	base := filepath.Base(strings.TrimRight(location, "/"))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
