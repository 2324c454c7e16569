package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:3333", cfg.ServerEndpointURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "session.db", cfg.CachePath)
}

func TestLoadConfig_NoFlagsUsesDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "http://127.0.0.1:3333", cfg.ServerEndpointURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
