package aiclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("zero config gets defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Validate())

		assert.Equal(t, FixedModel, cfg.Model)
		assert.Equal(t, DefaultTemperature, cfg.Temperature)
		assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
		assert.Equal(t, DefaultNumRetries, cfg.NumRetries)
	})

	t.Run("explicit values preserved", func(t *testing.T) {
		cfg := &Config{
			Model:       "custom-model",
			Temperature: 0.7,
			MaxTokens:   1024,
			Timeout:     60 * time.Second,
			NumRetries:  5,
		}
		require.NoError(t, cfg.Validate())

		assert.Equal(t, "custom-model", cfg.Model)
		assert.Equal(t, 0.7, cfg.Temperature)
		assert.Equal(t, 1024, cfg.MaxTokens)
		assert.Equal(t, 60*time.Second, cfg.Timeout)
		assert.Equal(t, 5, cfg.NumRetries)
	})

	t.Run("negative values replaced", func(t *testing.T) {
		cfg := &Config{
			Temperature: -1,
			MaxTokens:   -100,
			Timeout:     -time.Second,
			NumRetries:  -3,
		}
		require.NoError(t, cfg.Validate())

		assert.Equal(t, DefaultTemperature, cfg.Temperature)
		assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
		assert.Equal(t, DefaultNumRetries, cfg.NumRetries)
	})
}

func TestResolveAuthToken(t *testing.T) {
	t.Setenv(EnvAuthToken, "")
	t.Setenv(EnvAPIKey, "")

	assert.Equal(t, DefaultAuthToken, resolveAuthToken(&Config{}))
	assert.Equal(t, "key-cfg", resolveAuthToken(&Config{APIKey: "key-cfg"}))

	t.Setenv(EnvAPIKey, "key-env")
	assert.Equal(t, "key-env", resolveAuthToken(&Config{APIKey: "key-cfg"}))

	t.Setenv(EnvAuthToken, "tok-env")
	assert.Equal(t, "tok-env", resolveAuthToken(&Config{APIKey: "key-cfg"}))
}
