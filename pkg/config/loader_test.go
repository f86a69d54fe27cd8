package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/puretext/pkg/config"
)

type fileConfig struct {
	Addr     string   `env:"PURETEXT_TEST_ADDR"`
	Backend  string   `env:"PURETEXT_TEST_BACKEND"`
	Modes    []string `env:"PURETEXT_TEST_MODES" envSeparator:","`
	Title    string   `env:"PURETEXT_TEST_TITLE"`
	Override string   `env:"PURETEXT_TEST_ONLY_OVERRIDE"`
}

type defaultsConfig struct {
	Timeout time.Duration `env:"PURETEXT_TEST_TIMEOUT" envDefault:"5s"`
	Limit   int           `env:"PURETEXT_TEST_LIMIT" envDefault:"1024"`
}

type requiredConfig struct {
	Key string `env:"PURETEXT_TEST_REQUIRED,required"`
}

var fileKeys = []string{
	"PURETEXT_TEST_ADDR",
	"PURETEXT_TEST_BACKEND",
	"PURETEXT_TEST_MODES",
	"PURETEXT_TEST_TITLE",
	"PURETEXT_TEST_ONLY_OVERRIDE",
}

func unsetAll(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestLoadEnv_SingleFile(t *testing.T) {
	unsetAll(t, fileKeys...)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.base"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "file", cfg.Backend)
	assert.Equal(t, []string{"plain", "html"}, cfg.Modes)
	assert.Equal(t, "quoted value", cfg.Title)
	assert.Empty(t, cfg.Override)
}

func TestLoadEnv_LaterFilesOverride(t *testing.T) {
	unsetAll(t, fileKeys...)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "redis", cfg.Backend)
	assert.Equal(t, "yes", cfg.Override)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
}

func TestLoadEnv_EnvironmentWins(t *testing.T) {
	unsetAll(t, fileKeys...)
	config.ResetCache()
	t.Setenv("PURETEXT_TEST_BACKEND", "memory")

	require.NoError(t, config.LoadEnv("testdata/.env.base"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "memory", cfg.Backend)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	unsetAll(t, fileKeys...)

	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.base") })
	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll(t, "PURETEXT_TEST_TIMEOUT", "PURETEXT_TEST_LIMIT")
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 1024, cfg.Limit)
}

func TestLoad_Cached(t *testing.T) {
	unsetAll(t, "PURETEXT_TEST_TIMEOUT", "PURETEXT_TEST_LIMIT")
	config.ResetCache()

	var first defaultsConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("PURETEXT_TEST_LIMIT", "1")

	var second defaultsConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, 1024, second.Limit, "cached value is returned")

	var reloaded defaultsConfig
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, 1, reloaded.Limit)
}

func TestLoad_Required(t *testing.T) {
	unsetAll(t, "PURETEXT_TEST_REQUIRED")
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("PURETEXT_TEST_REQUIRED", "value")

	var again requiredConfig
	require.NoError(t, config.Load(&again), "a failed parse is not cached")
	assert.Equal(t, "value", again.Key)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	unsetAll(t, "PURETEXT_TEST_REQUIRED")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
