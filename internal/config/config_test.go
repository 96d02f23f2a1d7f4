package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing token is a configuration error", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")

		cfg, err := LoadConfig()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
		assert.Nil(t, cfg)
	})

	t.Run("token is read from the environment", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "ghp_test_token")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "ghp_test_token", cfg.GitHub.Token)
	})
}
