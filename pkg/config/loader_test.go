package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/config"
)

type separatorConfig struct {
	Separator string `env:"TEST_DECIMAL_SEPARATOR" envDefault:"."`
	Precision int    `env:"TEST_PRECISION" envDefault:"2"`
}

type timezoneConfig struct {
	Timezone string `env:"TEST_TIMEZONE" envDefault:"UTC"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type envFileConfig struct {
	Label string `env:"TEST_ENV_FILE_LABEL"`
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_DECIMAL_SEPARATOR", ",")
	t.Setenv("TEST_PRECISION", "3")

	var cfg separatorConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, ",", cfg.Separator)
	assert.Equal(t, 3, cfg.Precision)
}

func TestLoad_DefaultValues(t *testing.T) {
	config.Reset()
	os.Unsetenv("TEST_DECIMAL_SEPARATOR")
	os.Unsetenv("TEST_PRECISION")

	var cfg separatorConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Separator)
	assert.Equal(t, 2, cfg.Precision)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_TIMEZONE", "Europe/Paris")

	var first timezoneConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_TIMEZONE", "Asia/Tokyo")

	var second timezoneConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "Europe/Paris", second.Timezone, "second load must be served from cache")

	config.Reset()

	var third timezoneConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "Asia/Tokyo", third.Timezone, "reset must force a new parse")
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()
	os.Unsetenv("TEST_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Run("retries after the environment is fixed", func(t *testing.T) {
		t.Setenv("TEST_REQUIRED_VALUE", "present")

		var cfg requiredConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "present", cfg.Required)
	})
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *separatorConfig
	err := config.Load(cfg)

	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	os.Unsetenv("TEST_REQUIRED_VALUE")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	assert.NotPanics(t, func() {
		var cfg separatorConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	config.Reset()
	os.Unsetenv("TEST_ENV_FILE_LABEL")
	t.Cleanup(func() { os.Unsetenv("TEST_ENV_FILE_LABEL") })

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_ENV_FILE_LABEL=EUR\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "EUR", cfg.Label)

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no paths", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
