package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/devlearn/internal/flagx"
)

// parseFlags applies the flags owned by this package:
//
//	-d string   SQLite data file
//	-l string   log level
//
// Other arguments are ignored.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-d", "-l"})

	fs := flag.NewFlagSet("devlearn", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.DataFile, "d", cfg.DataFile, "SQLite data file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
