// Package config provides Viper-based hierarchical configuration for the
// debt-plan CLI: defaults, an optional config.yaml, and DEBTPLAN_* env vars,
// in ascending precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Simulator struct {
		// PayoffEpsilon is the balance at or below which a debt counts
		// as paid. Tune per currency precision.
		PayoffEpsilon float64 `mapstructure:"payoff_epsilon" yaml:"payoff_epsilon"`
		// MaxMonths is the non-convergence circuit breaker.
		MaxMonths int `mapstructure:"max_months" yaml:"max_months"`
	} `mapstructure:"simulator" yaml:"simulator"`

	Advisor struct {
		HighRatePercent     float64 `mapstructure:"high_rate_percent" yaml:"high_rate_percent"`
		LargeTotalBalance   float64 `mapstructure:"large_total_balance" yaml:"large_total_balance"`
		SmallBalance        float64 `mapstructure:"small_balance" yaml:"small_balance"`
		MinDebtsForSnowball int     `mapstructure:"min_debts_for_snowball" yaml:"min_debts_for_snowball"`
		MeanRatePercent     float64 `mapstructure:"mean_rate_percent" yaml:"mean_rate_percent"`
	} `mapstructure:"advisor" yaml:"advisor"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`
}

// LoadEnv loads a .env file from the working directory when present. Missing
// files are fine; env vars may come from the environment directly.
func LoadEnv() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: error loading .env file: %v\n", err)
		}
	}
}

// InitializeConfig builds the configuration from defaults, an optional
// config file and environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.debt-plan")
	v.AddConfigPath(".debt-plan")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DEBTPLAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The API key always comes from the unprefixed env var.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("simulator.payoff_epsilon", 0.1)
	v.SetDefault("simulator.max_months", 600)

	v.SetDefault("advisor.high_rate_percent", 15.0)
	v.SetDefault("advisor.large_total_balance", 10000.0)
	v.SetDefault("advisor.small_balance", 1000.0)
	v.SetDefault("advisor.min_debts_for_snowball", 3)
	v.SetDefault("advisor.mean_rate_percent", 10.0)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Simulator.PayoffEpsilon <= 0 {
		return fmt.Errorf("simulator.payoff_epsilon must be positive, got: %f", config.Simulator.PayoffEpsilon)
	}

	if config.Simulator.MaxMonths < 1 {
		return fmt.Errorf("simulator.max_months must be at least 1, got: %d", config.Simulator.MaxMonths)
	}

	if config.Advisor.MinDebtsForSnowball < 1 {
		return fmt.Errorf("advisor.min_debts_for_snowball must be at least 1, got: %d", config.Advisor.MinDebtsForSnowball)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	return nil
}

// PayoffEpsilon returns the configured payoff epsilon as a decimal.
func (c *Config) PayoffEpsilon() decimal.Decimal {
	return decimal.NewFromFloat(c.Simulator.PayoffEpsilon)
}

// ConfigureLogging builds a logrus logger from the Log section.
func ConfigureLogging(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
