package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session snapshot backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=thrive-dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Mock    MockConfig

	Mongo MongoConfig
	Redis RedisConfig
}

type SessionConfig struct {
	Backend string `env:"SESSION_BACKEND, default=file"`
	Key     string `env:"SESSION_KEY,     default=thrive_user"`
	Dir     string `env:"SESSION_DIR,     default=.thrive"`
}

type MockConfig struct {
	// LatencyScale multiplies every simulated API delay; 0 disables them.
	LatencyScale     float64       `env:"MOCK_LATENCY_SCALE, default=1"`
	ChatPollInterval time.Duration `env:"CHAT_POLL_INTERVAL, default=5s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=thrive"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,   default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,     default=0"`
	Prefix   string `env:"REDIS_PREFIX, default=thrive:session:"`
}

// IsDevelopment reports whether the process runs in the development
// environment.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Session.Backend {
	case BackendFile, BackendMemory, BackendRedis, BackendMongo:
	default:
		return fmt.Errorf("%w: unknown SESSION_BACKEND %q", ErrInvalidConfig, c.Session.Backend)
	}
	if c.Mock.LatencyScale < 0 {
		return fmt.Errorf("%w: MOCK_LATENCY_SCALE must not be negative", ErrInvalidConfig)
	}
	if c.Mock.ChatPollInterval <= 0 {
		return fmt.Errorf("%w: CHAT_POLL_INTERVAL must be positive", ErrInvalidConfig)
	}
	if c.Session.Key == "" {
		return fmt.Errorf("%w: SESSION_KEY must not be empty", ErrInvalidConfig)
	}
	return nil
}
