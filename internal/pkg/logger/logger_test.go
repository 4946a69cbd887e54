package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:   "nil config uses defaults",
			config: nil,
		},
		{
			name:   "console json",
			config: &Config{Level: "debug", Format: "json", Output: "console"},
		},
		{
			name:   "console format",
			config: &Config{Level: "info", Format: "console", Output: "console"},
		},
		{
			name:    "invalid level",
			config:  &Config{Level: "verbose", Format: "json", Output: "console"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			config:  &Config{Level: "info", Format: "xml", Output: "console"},
			wantErr: true,
		},
		{
			name:    "file output without filename",
			config:  &Config{Level: "info", Format: "json", Output: "file"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, log)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, log)
			}
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	log, err := New(&Config{
		Level:  "info",
		Format: "json",
		Output: "file",
		File: FileConfig{
			Filename: filepath.Join(t.TempDir(), "test.log"),
			MaxSize:  1,
		},
	})
	require.NoError(t, err)

	log.Info("hello")
	require.NoError(t, log.Sync())
}

func TestWithAndNamed(t *testing.T) {
	log := NewNop()
	assert.NotNil(t, log.With())
	assert.NotNil(t, log.Named("sub"))
}
