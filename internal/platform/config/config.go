package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Store drivers selectable through DIRECTORY_STORE.
const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Server captures process level configuration for the API server and CLI.
type Server struct {
	Addr        string           `toml:"addr"`
	LogLevel    string           `toml:"log_level"`
	AdminToken  string           `toml:"admin_token"`
	StoreDriver string           `toml:"store"`
	Mongo       MongoConfig      `toml:"mongo"`
	Postgres    PostgresConfig   `toml:"postgres"`
	Redis       RedisConfig      `toml:"redis"`
	OpenStates  OpenStatesConfig `toml:"openstates"`
}

// MongoConfig configures the document store.
type MongoConfig struct {
	URI      string        `toml:"uri"`
	Database string        `toml:"database"`
	Timeout  time.Duration `toml:"timeout"`
}

// PostgresConfig configures the relational store.
type PostgresConfig struct {
	DSN      string `toml:"dsn"`
	MaxConns int32  `toml:"max_conns"`
}

// RedisConfig configures the lock backend. An empty URL selects in-process locks.
type RedisConfig struct {
	URL          string        `toml:"url"`
	PoolSize     int           `toml:"pool_size"`
	MinIdleConns int           `toml:"min_idle_conns"`
	DialTimeout  time.Duration `toml:"dial_timeout"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	LockTTL      time.Duration `toml:"lock_ttl"`
}

// OpenStatesConfig configures the external officeholder source.
type OpenStatesConfig struct {
	BaseURL  string        `toml:"base_url"`
	APIKey   string        `toml:"api_key"`
	Timeout  time.Duration `toml:"timeout"`
	RetryMax int           `toml:"retry_max"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Server {
	return Server{
		Addr:        ":8080",
		LogLevel:    "info",
		StoreDriver: StoreMemory,
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "askthem",
			Timeout:  10 * time.Second,
		},
		Postgres: PostgresConfig{MaxConns: 10},
		Redis: RedisConfig{
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			LockTTL:      2 * time.Minute,
		},
		OpenStates: OpenStatesConfig{
			BaseURL:  "https://openstates.org/api/v1",
			Timeout:  30 * time.Second,
			RetryMax: 3,
		},
	}
}

// Load reads an optional .env file, an optional TOML file named by
// DIRECTORY_CONFIG, and finally environment variables, each layer overriding
// the previous one.
func Load() (Server, error) {
	return LoadPath("")
}

// LoadPath is Load with an explicit TOML file. An empty path falls back to
// DIRECTORY_CONFIG.
func LoadPath(path string) (Server, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Server{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := Defaults()
	if path == "" {
		path = os.Getenv("DIRECTORY_CONFIG")
	}
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Server{}, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// FromEnv builds a Server config from defaults and environment variables only,
// so main stays lean in tests and containers.
func FromEnv() Server {
	cfg := Defaults()
	applyEnv(&cfg)
	return cfg
}

// LoadFile decodes a TOML file over cfg.
func LoadFile(path string, cfg *Server) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Validate checks cross-field requirements.
func (s Server) Validate() error {
	switch s.StoreDriver {
	case StoreMemory:
	case StoreMongo:
		if s.Mongo.URI == "" {
			return errors.New("mongo store requires DIRECTORY_MONGO_URI")
		}
	case StorePostgres:
		if s.Postgres.DSN == "" {
			return errors.New("postgres store requires DIRECTORY_POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unknown store driver %q", s.StoreDriver)
	}
	return nil
}

func applyEnv(cfg *Server) {
	setString(&cfg.Addr, "DIRECTORY_ADDR")
	setString(&cfg.LogLevel, "DIRECTORY_LOG_LEVEL")
	setString(&cfg.AdminToken, "DIRECTORY_ADMIN_TOKEN")
	setString(&cfg.StoreDriver, "DIRECTORY_STORE")

	setString(&cfg.Mongo.URI, "DIRECTORY_MONGO_URI")
	setString(&cfg.Mongo.Database, "DIRECTORY_MONGO_DATABASE")
	setDuration(&cfg.Mongo.Timeout, "DIRECTORY_MONGO_TIMEOUT")

	setString(&cfg.Postgres.DSN, "DIRECTORY_POSTGRES_DSN")

	setString(&cfg.Redis.URL, "REDIS_URL")
	setDuration(&cfg.Redis.LockTTL, "REDIS_LOCK_TTL")

	setString(&cfg.OpenStates.BaseURL, "OPENSTATES_URL")
	setString(&cfg.OpenStates.APIKey, "OPENSTATES_API_KEY")
	setDuration(&cfg.OpenStates.Timeout, "OPENSTATES_TIMEOUT")
	if v := os.Getenv("OPENSTATES_RETRY_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.OpenStates.RetryMax = n
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
