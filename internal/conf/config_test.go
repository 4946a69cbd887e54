package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
ai:
  model: "qwen3-max-preview"
  api_key: "sk-test"
  api_base_url: "https://gateway.example.com/open_api/v1/chat"
  temperature: 0.8
  max_tokens: 2048
  timeout: 90s
  num_retries: 3

log:
  level: "debug"
  format: "console"
  output: "console"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "qwen3-max-preview", cfg.AI.Model)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, "https://gateway.example.com/open_api/v1/chat", cfg.AI.APIBaseURL)
	assert.Equal(t, 0.8, cfg.AI.Temperature)
	assert.Equal(t, 2048, cfg.AI.MaxTokens)
	assert.Equal(t, 90*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 3, cfg.AI.NumRetries)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
