package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proxy-lattice/internal/logging"
	"proxy-lattice/internal/operators"
)

var envKeys = []string{
	"PORT", "APP_ENV", "LOG_FORMAT", "DIRECTORY_FILE", "DIRECTORY_WATCH",
	"OPERATORS_GROUP", "OPERATORS_CACHE_TTL",
}

// clearEnv blanks every variable Load reads. t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Port:      DefaultPort,
		Env:       DefaultEnv,
		Log:       logging.Options{Format: logging.FormatJSON},
		Directory: DirectoryConfig{File: DefaultDirectoryFile, Watch: true},
		Operators: OperatorsConfig{Group: operators.DefaultGroup, CacheTTL: operators.DefaultCacheTTL},
	}, c)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FORMAT", "console:debug")
	t.Setenv("DIRECTORY_FILE", "/etc/plone/users.yaml")
	t.Setenv("OPERATORS_GROUP", "tecnici")
	t.Setenv("OPERATORS_CACHE_TTL", "30s")

	c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.Port)
	assert.Equal(t, "production", c.Env)
	assert.Equal(t, logging.Options{Format: logging.FormatConsole, Debug: true}, c.Log)
	assert.Equal(t, DirectoryConfig{File: "/etc/plone/users.yaml", Watch: false}, c.Directory)
	assert.Equal(t, OperatorsConfig{Group: "tecnici", CacheTTL: 30 * time.Second}, c.Operators)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("OPERATORS_GROUP")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPERATORS_GROUP=from_dotenv\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", c.Operators.Group)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"LOG_FORMAT", "xml", "LOG_FORMAT"},
		{"DIRECTORY_WATCH", "sometimes", "DIRECTORY_WATCH"},
		{"OPERATORS_CACHE_TTL", "forever", "OPERATORS_CACHE_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizePort(t *testing.T) {
	assert.Equal(t, ":8080", NormalizePort("8080"))
	assert.Equal(t, ":8080", NormalizePort(":8080"))
	assert.Equal(t, "127.0.0.1:8080", NormalizePort("127.0.0.1:8080"))
	assert.Equal(t, "", NormalizePort(""))
}
