package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress  string   `env:"API_ADDRESS" env-default:":3333"`
	JWTSecret   string   `env:"JWT_SECRET" env-required:"true"`
	CORSOrigins []string `env:"CORS_ORIGINS" env-default:"*" env-separator:","`
	Postgres    PostgresConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
	Metrics     MetricsConfig
}

type PostgresConfig struct {
	Address         string        `env:"POSTGRES_DB_ADDRESS" env-default:"localhost:5432"`
	Username        string        `env:"POSTGRES_USER" env-required:"true"`
	Password        string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	DB              string        `env:"POSTGRES_DB" env-required:"true"`
	MaxConns        int32         `env:"POSTGRES_MAX_CONNS" env-default:"25"`
	MinConns        int32         `env:"POSTGRES_MIN_CONNS" env-default:"5"`
	MaxConnLifetime time.Duration `env:"POSTGRES_MAX_CONN_LIFETIME" env-default:"1h"`
	MaxConnIdleTime time.Duration `env:"POSTGRES_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

func (pgcfg *PostgresConfig) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

type CacheConfig struct {
	TTL      time.Duration `env:"CREATOR_CACHE_TTL" env-default:"2m"`
	Capacity int           `env:"CREATOR_CACHE_CAPACITY" env-default:"100"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" env-default:"5"`
	Burst int     `env:"RATE_LIMIT_BURST" env-default:"30"`
}

type MetricsConfig struct {
	User     string `env:"METRICS_USER"`
	Password string `env:"METRICS_PASS"`
}

// New reads the process configuration once. A missing .env file is fine,
// missing required variables are not.
func New() *Config {
	once.Do(func() {
		cfg, err := Read("./configs/.env")
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Read loads envFiles (if present) into the environment and parses Config from it.
func Read(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("loading env file error: " + err.Error())
		}
	}
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.New("reading env error: " + err.Error())
	}
	return cfg, nil
}
