package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "users.db", cfg.DatabasePath)
	assert.Contains(t, cfg.ReportURL, "app.powerbi.com")
	assert.False(t, cfg.IsEnvProd())
}

func TestSecretKeyBytes(t *testing.T) {
	cfg := &Config{SecretKey: "000102030405060708090a0b0c0d0e0f"}
	key, err := cfg.SecretKeyBytes()
	require.NoError(t, err)
	assert.Len(t, key, 16)

	cfg = &Config{SecretKey: "zz"}
	_, err = cfg.SecretKeyBytes()
	assert.Error(t, err)

	cfg = &Config{SecretKey: "0001"}
	_, err = cfg.SecretKeyBytes()
	assert.Error(t, err)
}
