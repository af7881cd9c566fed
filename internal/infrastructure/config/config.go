package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:8000/api/v1"`
	Env        string `env:"ENV,          default=development"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`

	// TokenBackend selects where the bearer token is persisted:
	// "file", "redis", or "memory".
	TokenBackend string `env:"TOKEN_BACKEND, default=file"`
	// TokenPath is the token file location for the file backend.
	// When empty it resolves under the user config directory.
	TokenPath string `env:"TOKEN_PATH"`

	Redis RedisConfig
	Stub  StubConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	Key  string `env:"REDIS_TOKEN_KEY, default=marketclient:token"`
}

// StubConfig configures the local stub upstream used for development and
// integration tests.
type StubConfig struct {
	Port           string `env:"STUB_PORT,       default=8000"`
	JWTSecret      string `env:"STUB_JWT_SECRET, default=stub-secret"`
	TokenTTLMinute int    `env:"STUB_TOKEN_TTL_MINUTES, default=30"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = defaultTokenPath()
	}
	return &cfg, nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".marketclient", "token")
	}
	return filepath.Join(dir, "marketclient", "token")
}
