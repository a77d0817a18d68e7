// Package config reads the resale settings from the environment, optionally
// seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvLedgerPath    = "RESALE_LEDGER_PATH"
	EnvStore         = "RESALE_STORE"
	EnvCurrency      = "RESALE_CURRENCY"
	EnvDBHost        = "DB_HOST"
	EnvDBPort        = "DB_PORT"
	EnvDBUser        = "DB_USER"
	EnvDBPassword    = "DB_PASSWORD"
	EnvDBName        = "DB_NAME"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"
	EnvCacheTTL      = "REPORT_CACHE_TTL"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvServerAddr    = "SERVER_ADDR"
)

// Kinds of ledger store.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreMySQL    = "mysql"
)

// DB holds the connection settings of a SQL ledger store.
type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Config holds every setting of the resale tools.
type Config struct {
	LedgerPath string // ledger file or directory, for the file store
	Store      string // file, postgres or mysql
	Currency   string
	DB         DB

	RedisAddr     string // no cache when empty
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	LogLevel   string
	LogFormat  string
	ServerAddr string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LedgerPath: "transactions.jsonl",
		Store:      StoreFile,
		Currency:   "EUR",
		DB:         DB{Host: "localhost"},
		CacheTTL:   5 * time.Minute,
		LogLevel:   "info",
		LogFormat:  "text",
		ServerAddr: ":8080",
	}
}

// Load reads the .env files (".env" when none is given) if they exist, and
// then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the variables returned by getenv, on top of
// the defaults. All invalid values are reported at once.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.LedgerPath, EnvLedgerPath)
	set(&c.Store, EnvStore)
	set(&c.Currency, EnvCurrency)
	set(&c.DB.Host, EnvDBHost)
	set(&c.DB.Port, EnvDBPort)
	set(&c.DB.User, EnvDBUser)
	set(&c.DB.Password, EnvDBPassword)
	set(&c.DB.Name, EnvDBName)
	set(&c.RedisAddr, EnvRedisAddr)
	set(&c.RedisPassword, EnvRedisPassword)
	set(&c.LogLevel, EnvLogLevel)
	set(&c.LogFormat, EnvLogFormat)
	set(&c.ServerAddr, EnvServerAddr)

	var errs error
	if v := getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", EnvRedisDB, err))
		}
		c.RedisDB = db
	}
	if v := getenv(EnvCacheTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", EnvCacheTTL, err))
		}
		c.CacheTTL = ttl
	}
	switch c.Store {
	case StoreFile, StorePostgres, StoreMySQL:
	default:
		errs = errors.Join(errs, fmt.Errorf("%s: unknown store %q, want %s, %s or %s", EnvStore, c.Store, StoreFile, StorePostgres, StoreMySQL))
	}
	return c, errs
}
