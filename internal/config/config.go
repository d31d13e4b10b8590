// Package config loads settings for the tabprep command.
//
// Precedence, highest first: command-line flags, TABPREP_* environment
// variables, the YAML config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/internal/logger"
	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/dataprep"
)

// FileName is the config file looked up in the working directory.
const FileName = "tabprep.yaml"

// EnvPrefix prefixes environment overrides, e.g. TABPREP_STRATEGY.
const EnvPrefix = "TABPREP_"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Input    string    `koanf:"input"`
	Output   string    `koanf:"output"`
	Strategy string    `koanf:"strategy"`
	Preview  int       `koanf:"preview"`
	Plot     string    `koanf:"plot"`
	Report   string    `koanf:"report"`
	CSV      CSVConfig `koanf:"csv"`
	Log      LogConfig `koanf:"log"`
}

// CSVConfig controls CSV parsing.
type CSVConfig struct {
	Comma   string   `koanf:"comma"`
	Missing []string `koanf:"missing"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"strategy":    "median",
		"preview":     10,
		"csv.comma":   ",",
		"log.level":   "info",
		"log.format":  "text",
		"csv.missing": []string{"", "NA", "NaN", "null"},
	}
}

// Load builds a Config from defaults, the config file, the environment and
// the changed flags in fs. An empty cfgFile means ./tabprep.yaml if present.
func Load(cfgFile string, fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(FileName); err == nil {
			cfgFile = FileName
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
		}
	}

	// TABPREP_LOG_LEVEL -> log.level, TABPREP_CSV_MISSING=NA,null -> csv.missing list
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(s, v string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if i := strings.IndexByte(key, '_'); i > 0 && (key[:i] == "log" || key[:i] == "csv") {
			key = key[:i] + "." + key[i+1:]
		}
		if key == "csv.missing" {
			tokens := strings.Split(v, ",")
			for i := range tokens {
				tokens[i] = strings.TrimSpace(tokens[i])
			}
			return key, tokens
		}
		return key, v
	}), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// --log-level -> log.level
			key := f.Name
			for _, group := range []string{"log-", "csv-"} {
				if strings.HasPrefix(key, group) {
					key = strings.TrimSuffix(group, "-") + "." + strings.TrimPrefix(key, group)
				}
			}
			return key, posflag.FlagVal(fs, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that cannot be checked by type alone.
func (c *Config) Validate() error {
	if !dataprep.KnownStrategy(c.Strategy) {
		return fmt.Errorf("%w: unknown strategy %q (want mean, median, mode or drop)", ErrInvalidConfig, c.Strategy)
	}
	if c.Preview < 0 {
		return fmt.Errorf("%w: preview must be >= 0, got %d", ErrInvalidConfig, c.Preview)
	}
	if c.Output != "" && !strings.EqualFold(filepath.Ext(c.Output), ".csv") {
		return fmt.Errorf("%w: output %q must be a .csv file", ErrInvalidConfig, c.Output)
	}
	if c.CSV.Comma != "" && utf8.RuneCountInString(c.CSV.Comma) != 1 {
		return fmt.Errorf("%w: csv comma must be a single character, got %q", ErrInvalidConfig, c.CSV.Comma)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Comma returns the CSV delimiter rune, ',' when unset.
func (c *Config) Comma() rune {
	if c.CSV.Comma == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.CSV.Comma)
	return r
}

// ApplyLogging configures the global logger from c.Log.
func (c *Config) ApplyLogging() error {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(c.Log.Format)
	if err != nil {
		return err
	}
	logger.SetFormat(format)
	logger.SetLevel(level)
	return nil
}
