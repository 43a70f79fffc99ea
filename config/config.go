// Package config loads the settings of the inv tool.
//
// Settings are read, lowest priority first, from built-in defaults, an
// optional YAML file, an optional .env file and INVENTORY_* environment
// variables. A variable maps to a key by dropping the prefix, lower casing and
// turning "_" into ".": INVENTORY_DATA_FILE sets data.file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/inventory"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "INVENTORY_"

// Default file names, relative to the working directory.
const (
	DefaultFile    = "inventory.yaml"
	DefaultEnvFile = ".env"
	DefaultData    = "inventory.json"
)

type Config struct {
	Data     DataConfig    `koanf:"data"`
	Currency string        `koanf:"currency" validate:"required"`
	Stock    StockConfig   `koanf:"stock"`
	Report   ReportConfig  `koanf:"report"`
	Log      LogConfig     `koanf:"log"`
	Advisor  AdvisorConfig `koanf:"advisor"`
}

type DataConfig struct {
	File string `koanf:"file" validate:"required"`
}

type StockConfig struct {
	// Minimum is the minimum stock threshold proposed for new products.
	Minimum int `koanf:"minimum" validate:"gt=0"`
}

type ReportConfig struct {
	Format string `koanf:"format" validate:"oneof=text markdown html"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	// File is an optional log file, rotated when it reaches MaxSize megabytes.
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"maxsize" validate:"gte=0"`
	MaxBackups int    `koanf:"maxbackups" validate:"gte=0"`
}

type AdvisorConfig struct {
	Model  string `koanf:"model" validate:"required"`
	APIKey string `koanf:"apikey"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"data.file":      DefaultData,
		"currency":       "USD",
		"stock.minimum":  inventory.DefaultMinStock,
		"report.format":  "text",
		"log.level":      "warn",
		"log.file":       "",
		"log.maxsize":    10,
		"log.maxbackups": 3,
		"advisor.model":  "gemini-2.5-flash",
		"advisor.apikey": "",
	}
}

// envKey turns an environment variable name into a configuration key.
func envKey(key string) string {
	key = strings.ToLower(key)
	key = strings.TrimPrefix(key, strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(key, "_", ".")
}

// Load reads the configuration. Missing files are skipped, an empty name
// skips the file altogether.
func Load(configFile, envFile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	// 2. YAML file
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading config file %q: %w", configFile, err)
		}
	}

	// 3. .env file
	if envFile != "" {
		envFileMap, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			envMap := make(map[string]any)
			for key, value := range envFileMap {
				if strings.HasPrefix(key, EnvPrefix) {
					envMap[envKey(key)] = value
				}
			}
			if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
				return nil, fmt.Errorf("error loading %q: %w", envFile, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("error reading %q: %w", envFile, err)
		}
	}

	// 4. Environment variables, the highest priority
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if !inventory.KnownCurrency(c.Currency) {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	return nil
}

// APIKey returns the advisor API key, falling back on the GEMINI_API_KEY
// variable used by the Gemini SDK.
func (c *Config) APIKey() string {
	if c.Advisor.APIKey != "" {
		return c.Advisor.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Inventory ---\n")
	b.WriteString(fmt.Sprintf("  data.file: %s\n", c.Data.File))
	b.WriteString(fmt.Sprintf("  currency: %s\n", c.Currency))
	b.WriteString(fmt.Sprintf("  stock.minimum: %d\n", c.Stock.Minimum))
	b.WriteString(fmt.Sprintf("  report.format: %s\n", c.Report.Format))

	b.WriteString("\n--- Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  log.file: %s\n", c.Log.File))
	b.WriteString(fmt.Sprintf("  log.maxsize: %d\n", c.Log.MaxSize))
	b.WriteString(fmt.Sprintf("  log.maxbackups: %d\n", c.Log.MaxBackups))

	b.WriteString("\n--- Advisor ---\n")
	b.WriteString(fmt.Sprintf("  advisor.model: %s\n", c.Advisor.Model))
	b.WriteString(fmt.Sprintf("  advisor.apikey: %s\n", maskKey(c.Advisor.APIKey)))

	return b.String()
}

func maskKey(key string) string {
	if key == "" {
		return "<not configured>"
	}
	return "****"
}
