package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/devlearn/internal/flagx"
	"github.com/dmitrijs2005/devlearn/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "90s" style
// strings or integer nanoseconds. Zero values are ignored.
type JsonConfig struct {
	DataFile            string         `json:"data_file"`
	LogLevel            string         `json:"log_level"`
	ActivityLogCapacity int            `json:"activity_log_capacity"`
	ContactCapacity     int            `json:"contact_capacity"`
	DraftTTL            timex.Duration `json:"draft_ttl"`
	DraftDebounce       timex.Duration `json:"draft_debounce"`
	ProviderDelay       timex.Duration `json:"provider_delay"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.DataFile, jc.DataFile)
	setString(&cfg.LogLevel, jc.LogLevel)
	setInt(&cfg.ActivityLogCapacity, jc.ActivityLogCapacity)
	setInt(&cfg.ContactCapacity, jc.ContactCapacity)
	setDuration(&cfg.DraftTTL, jc.DraftTTL)
	setDuration(&cfg.DraftDebounce, jc.DraftDebounce)
	setDuration(&cfg.ProviderDelay, jc.ProviderDelay)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
