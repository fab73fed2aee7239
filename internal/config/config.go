// Package config reads the serve settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"proxy-lattice/internal/logging"
	"proxy-lattice/internal/operators"
)

const (
	DefaultPort          = ":8081"
	DefaultEnv           = "local"
	DefaultDirectoryFile = "directory.yaml"
)

type Config struct {
	Port string
	Env  string
	Log  logging.Options

	Directory DirectoryConfig
	Operators OperatorsConfig
}

type DirectoryConfig struct {
	File  string
	Watch bool
}

type OperatorsConfig struct {
	Group    string
	CacheTTL time.Duration
}

// Load reads .env files, when present, and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	env := firstNonEmpty(strings.TrimSpace(os.Getenv("APP_ENV")), DefaultEnv)

	log, err := logging.ParseFormat(os.Getenv("LOG_FORMAT"))
	if err != nil {
		return nil, fmt.Errorf("LOG_FORMAT: %w", err)
	}

	watch, err := parseBool(os.Getenv("DIRECTORY_WATCH"), strings.EqualFold(env, DefaultEnv))
	if err != nil {
		return nil, fmt.Errorf("DIRECTORY_WATCH: %w", err)
	}

	ttl := operators.DefaultCacheTTL
	if raw := strings.TrimSpace(os.Getenv("OPERATORS_CACHE_TTL")); raw != "" {
		if ttl, err = time.ParseDuration(raw); err != nil {
			return nil, fmt.Errorf("OPERATORS_CACHE_TTL: %w", err)
		}
	}

	return &Config{
		Port: NormalizePort(firstNonEmpty(strings.TrimSpace(os.Getenv("PORT")), DefaultPort)),
		Env:  env,
		Log:  log,
		Directory: DirectoryConfig{
			File:  firstNonEmpty(strings.TrimSpace(os.Getenv("DIRECTORY_FILE")), DefaultDirectoryFile),
			Watch: watch,
		},
		Operators: OperatorsConfig{
			Group:    firstNonEmpty(strings.TrimSpace(os.Getenv("OPERATORS_GROUP")), operators.DefaultGroup),
			CacheTTL: ttl,
		},
	}, nil
}

// NormalizePort turns "8080" into ":8080" and leaves host:port values alone.
func NormalizePort(port string) string {
	if port == "" || strings.Contains(port, ":") {
		return port
	}

	return ":" + port
}

func parseBool(raw string, def bool) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}

	return strconv.ParseBool(raw)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
