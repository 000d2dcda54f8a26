package models

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Host string `env:"HOST,default=localhost"`
	Port int    `env:"PORT,default=8080"`

	// SessionSecret signs session tokens. There is no default on purpose:
	// a missing secret must fail startup, not silently sign with "".
	SessionSecret   string        `env:"SESSION_SECRET,required=true"`
	SessionDuration time.Duration `env:"SESSION_DURATION,default=24h"`

	// AuthorizeURL is the credentials collaborator. In the default deploy it
	// points back at this process (/api/authorize), but it stays a URL so the
	// check can be delegated elsewhere without code changes.
	AuthorizeURL   string        `env:"AUTHORIZE_URL,required=true"`
	UserServiceURL string        `env:"USER_SERVICE_URL,required=true"`
	ClientTimeout  time.Duration `env:"CLIENT_TIMEOUT,default=10s"`

	ProfileCacheTTL time.Duration `env:"PROFILE_CACHE_TTL,default=30s"`

	DBHost     string `env:"DB_HOST,default=localhost"`
	DBPort     string `env:"DB_PORT,default=5432"`
	DBUser     string `env:"DB_USER,required=true"`
	DBPassword string `env:"DB_PASSWORD,required=true"`
	DBName     string `env:"DB_NAME,required=true"`

	SendInterval time.Duration `env:"SEND_INTERVAL,default=2s"`
	SendBurst    int           `env:"SEND_BURST,default=5"`
}

const (
	InboxLimit    = 500
	DefaultPrompt = "Send me an anonymous message!"
)

func LoadConfig() (Config, error) {
	// Missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
