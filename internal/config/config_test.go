package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikilabels/internal/models"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://en.wikipedia.org/w/api.php", cfg.Wikipedia.BaseURL)
	assert.Equal(t, 10, cfg.Wikipedia.SearchLimit)
	assert.Equal(t, 3, cfg.Suggest.TopN)
	assert.Equal(t, 3, cfg.Suggest.BootstrapSize)
	assert.Equal(t, 4, cfg.Suggest.MaxConcurrency)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadBootstrapSize(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.Suggest.BootstrapSize = 0
	assert.ErrorIs(t, cfg.Validate(), models.ErrConfiguration)
}

func TestValidate_RejectsNegativeTopN(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.Suggest.TopN = -1
	assert.ErrorIs(t, cfg.Validate(), models.ErrConfiguration)
}

func TestValidate_RejectsMissingServerPort(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.Server.Port = ""
	assert.ErrorIs(t, cfg.Validate(), models.ErrConfiguration)
}

func TestValidate_RejectsBadTimeout(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.Wikipedia.TimeoutSeconds = 0
	assert.ErrorIs(t, cfg.Validate(), models.ErrConfiguration)
}
