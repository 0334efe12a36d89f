package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "data_dir: /tmp/nd\nchat:\n  reply_delay: 250ms\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/nd", cfg.DataDir)
	assert.Equal(t, "250ms", cfg.Chat.ReplyDelay)
	// Unset sections keep their defaults.
	assert.Equal(t, "1.0", cfg.Legal.Version)
	assert.True(t, cfg.Audit.Enabled)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("chat: ["), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)

	cfg := DefaultConfig()
	cfg.DataDir = "/var/lib/neurodemon"
	cfg.Legal.Version = "1.1"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:   "empty reply delay is allowed",
			mutate: func(c *Config) { c.Chat.ReplyDelay = "" },
		},
		{
			name:    "missing legal version",
			mutate:  func(c *Config) { c.Legal.Version = "" },
			wantErr: true,
		},
		{
			name:    "unparsable reply delay",
			mutate:  func(c *Config) { c.Chat.ReplyDelay = "soon" },
			wantErr: true,
		},
		{
			name:    "negative reply delay",
			mutate:  func(c *Config) { c.Chat.ReplyDelay = "-1s" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestReplyDelay(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Second, cfg.ReplyDelay())

	cfg.Chat.ReplyDelay = "250ms"
	assert.Equal(t, 250*time.Millisecond, cfg.ReplyDelay())

	cfg.Chat.ReplyDelay = ""
	assert.Equal(t, DefaultReplyDelay, cfg.ReplyDelay())
}
