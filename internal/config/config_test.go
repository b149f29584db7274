package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.InDelta(t, 0.1, cfg.Simulator.PayoffEpsilon, 1e-9)
	assert.Equal(t, 600, cfg.Simulator.MaxMonths)
	assert.InDelta(t, 15.0, cfg.Advisor.HighRatePercent, 1e-9)
	assert.InDelta(t, 10000.0, cfg.Advisor.LargeTotalBalance, 1e-9)
	assert.Equal(t, 3, cfg.Advisor.MinDebtsForSnowball)
	assert.False(t, cfg.AI.Enabled)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DEBTPLAN_LOG_LEVEL", "debug")
	t.Setenv("DEBTPLAN_SIMULATOR_MAX_MONTHS", "120")
	t.Setenv("DEBTPLAN_SIMULATOR_PAYOFF_EPSILON", "0.01")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 120, cfg.Simulator.MaxMonths)
	assert.InDelta(t, 0.01, cfg.Simulator.PayoffEpsilon, 1e-9)
}

func TestInitializeConfig_GeminiKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DEBTPLAN_AI_ENABLED", "true")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestInitializeConfig_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "DEBTPLAN_LOG_LEVEL", "verbose"},
		{"bad log format", "DEBTPLAN_LOG_FORMAT", "xml"},
		{"multi-char delimiter", "DEBTPLAN_CSV_DELIMITER", ";;"},
		{"zero epsilon", "DEBTPLAN_SIMULATOR_PAYOFF_EPSILON", "0"},
		{"zero month cap", "DEBTPLAN_SIMULATOR_MAX_MONTHS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestInitializeConfig_AIEnabledRequiresKey(t *testing.T) {
	t.Setenv("DEBTPLAN_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestPayoffEpsilon(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.True(t, cfg.PayoffEpsilon().Equal(decimal.NewFromFloat(0.1)))
}

func TestConfigureLogging(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"
	logger := ConfigureLogging(cfg)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
