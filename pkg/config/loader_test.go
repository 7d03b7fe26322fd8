package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gutendex/explorer/pkg/config"
)

type testConfigDefault struct {
	Prefix   string        `env:"TEST_SCRIPT_PREFIX_DEFAULT" envDefault:"/static/scripts/"`
	Timeout  time.Duration `env:"TEST_TIMEOUT_DEFAULT" envDefault:"5s"`
	Disabled bool          `env:"TEST_DISABLED_DEFAULT" envDefault:"true"`
}

type testConfigSuccess struct {
	Prefix string   `env:"TEST_SCRIPT_PREFIX_SUCCESS"`
	Hosts  []string `env:"TEST_HOSTS_SUCCESS" envSeparator:","`
	Port   int      `env:"TEST_PORT_SUCCESS"`
}

type testConfigSingleton struct {
	Value string `env:"TEST_VALUE_SINGLETON" envDefault:"default_value"`
}

type testConfigRequired struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type nested struct {
	Addr string `env:"TEST_NESTED_ADDR" envDefault:":8080"`
}

type testConfigNested struct {
	Server nested
	Name   string `env:"TEST_NESTED_NAME" envDefault:"explorer"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_SCRIPT_PREFIX_SUCCESS", "/assets/")
	t.Setenv("TEST_HOSTS_SUCCESS", "gutendex.com,example.com")
	t.Setenv("TEST_PORT_SUCCESS", "9000")

	var cfg testConfigSuccess
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "/assets/", cfg.Prefix)
	assert.Equal(t, []string{"gutendex.com", "example.com"}, cfg.Hosts)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_SCRIPT_PREFIX_DEFAULT")
	os.Unsetenv("TEST_TIMEOUT_DEFAULT")
	os.Unsetenv("TEST_DISABLED_DEFAULT")

	var cfg testConfigDefault
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "/static/scripts/", cfg.Prefix)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Disabled)
}

func TestLoad_Nested(t *testing.T) {
	os.Unsetenv("TEST_NESTED_ADDR")
	os.Unsetenv("TEST_NESTED_NAME")

	var cfg testConfigNested
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "explorer", cfg.Name)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_VALUE")

	var cfg testConfigRequired
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_VALUE_SINGLETON", "first_value")

	var first testConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_VALUE_SINGLETON", "second_value")

	var second testConfigSingleton
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first_value", second.Value)
	assert.Equal(t, first, second)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfigSuccess
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}
