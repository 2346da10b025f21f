package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/osse101/LoanQuote_Go/internal/logger"
	"github.com/osse101/LoanQuote_Go/internal/validation"
)

// ErrInvalidConfig is returned by Validate for any out-of-range setting
var ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)

// Config holds the application configuration
type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	LogFile       string `yaml:"log_file"` // empty logs to stderr only
	LogMaxAgeDays int    `yaml:"log_max_age_days"`
	Environment   string `yaml:"environment"`

	CurrencySymbol string `yaml:"currency_symbol"`
	Language       string `yaml:"language"`

	QuoteCacheSize int `yaml:"quote_cache_size"` // 0 disables the cache
	MinLoanAmount  int `yaml:"min_loan_amount"`
	MaxLoanAmount  int `yaml:"max_loan_amount"`
	LoanAmountStep int `yaml:"loan_amount_step"`

	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		LogMaxAgeDays:  logger.DefaultMaxAgeDays,
		Environment:    DefaultEnvironment,
		CurrencySymbol: DefaultCurrencySymbol,
		Language:       DefaultLanguage,
		QuoteCacheSize: DefaultQuoteCacheSize,
		MinLoanAmount:  validation.DefaultMinLoanAmount,
		MaxLoanAmount:  validation.DefaultMaxLoanAmount,
		LoanAmountStep: validation.DefaultLoanStep,
	}
}

// Load builds the configuration in layers: defaults, then the YAML file at
// path (skipped when path is empty), then environment variables, which may
// come from a .env file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf(ErrMsgOpenConfig, path, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf(ErrMsgDecodeConfig, path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.LogFormat = getEnv(EnvLogFormat, c.LogFormat)
	c.LogFile = getEnv(EnvLogFile, c.LogFile)
	c.LogMaxAgeDays = getEnvAsInt(EnvLogMaxAgeDays, c.LogMaxAgeDays)
	c.Environment = getEnv(EnvEnvironment, c.Environment)
	c.CurrencySymbol = getEnv(EnvCurrencySymbol, c.CurrencySymbol)
	c.Language = getEnv(EnvLanguage, c.Language)
	c.QuoteCacheSize = getEnvAsInt(EnvQuoteCacheSize, c.QuoteCacheSize)
	c.MinLoanAmount = getEnvAsInt(EnvMinLoanAmount, c.MinLoanAmount)
	c.MaxLoanAmount = getEnvAsInt(EnvMaxLoanAmount, c.MaxLoanAmount)
	c.LoanAmountStep = getEnvAsInt(EnvLoanAmountStep, c.LoanAmountStep)
	c.MetricsFile = getEnv(EnvMetricsFile, c.MetricsFile)
}

// Validate reports every invalid setting in one error wrapping ErrInvalidConfig
func (c *Config) Validate() error {
	var problems []string
	if c.MinLoanAmount > c.MaxLoanAmount {
		problems = append(problems, fmt.Sprintf("min loan amount %d exceeds max %d", c.MinLoanAmount, c.MaxLoanAmount))
	}
	if c.LoanAmountStep <= 0 {
		problems = append(problems, fmt.Sprintf("loan amount step must be positive, got %d", c.LoanAmountStep))
	}
	if c.QuoteCacheSize < 0 {
		problems = append(problems, fmt.Sprintf("quote cache size must not be negative, got %d", c.QuoteCacheSize))
	}
	if c.LogMaxAgeDays < 0 {
		problems = append(problems, fmt.Sprintf("log max age must not be negative, got %d", c.LogMaxAgeDays))
	}
	if _, err := language.Parse(c.Language); err != nil {
		problems = append(problems, fmt.Sprintf("language %q: %v", c.Language, err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// AmountRule returns the loan amount bounds
func (c *Config) AmountRule() validation.AmountRule {
	return validation.AmountRule{Min: c.MinLoanAmount, Max: c.MaxLoanAmount, Step: c.LoanAmountStep}
}

// LanguageTag returns the parsed report language. Validate guarantees it parses.
func (c *Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// LoggerConfig returns the logger settings for serviceName and version
func (c *Config) LoggerConfig(serviceName, version string) logger.Config {
	addSource := c.Environment == logger.EnvironmentDev
	return logger.NewConfig(c.LogLevel, c.LogFormat, serviceName, version, c.Environment, addSource).
		WithFile(c.LogFile, c.LogMaxAgeDays)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to
// defaultValue when it is unset or does not parse
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
