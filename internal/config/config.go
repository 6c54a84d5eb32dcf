package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DEVLEARN_"

// Config holds runtime settings for the DevLearn CLI.
type Config struct {
	// DataFile is the SQLite file backing the durable scope.
	DataFile string `env:"DATA_FILE"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL"`

	ActivityLogCapacity int `env:"ACTIVITY_LOG_CAPACITY"`
	ContactCapacity     int `env:"CONTACT_CAPACITY"`

	DraftTTL      time.Duration `env:"DRAFT_TTL"`
	DraftDebounce time.Duration `env:"DRAFT_DEBOUNCE"`
	// ProviderDelay is how long the simulated Google sign-in takes.
	ProviderDelay time.Duration `env:"PROVIDER_DELAY"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DataFile = "devlearn.db"
	c.LogLevel = "info"
	c.ActivityLogCapacity = 50
	c.ContactCapacity = 100
	c.DraftTTL = 24 * time.Hour
	c.DraftDebounce = time.Second
	c.ProviderDelay = 1500 * time.Millisecond
}

// Load builds a Config from args (without the program name) and environ.
func Load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], env.ToMap(os.Environ()))
}
