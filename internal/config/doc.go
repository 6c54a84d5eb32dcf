// Package config assembles DevLearn runtime settings.
//
// Sources are applied in order, later ones winning:
//
//  1. defaults (LoadDefaults)
//  2. a JSON file named by -c or -config
//  3. DEVLEARN_* environment variables
//  4. the -d (data file) and -l (log level) flags
package config
