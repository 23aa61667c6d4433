package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadClientDefaults(t *testing.T) {
	t.Setenv(envAPIURL, "")
	t.Setenv(envClientTimeout, "")
	t.Setenv(envClientLogFile, "")

	cfg := LoadClient()
	assert.Equal(t, defaultAPIURL, cfg.APIURL)
	assert.Equal(t, defaultClientTimeout, cfg.Timeout)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadClientOverrides(t *testing.T) {
	t.Setenv(envAPIURL, "http://search.internal:8080")
	t.Setenv(envClientTimeout, "3s")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envClientLogFile, "/tmp/gamenexus-tui.log")

	cfg := LoadClient()
	assert.Equal(t, "http://search.internal:8080", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/gamenexus-tui.log", cfg.LogFile)
}
