package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/monocle-dev/studytrack/db"
	"github.com/monocle-dev/studytrack/internal/auth"
	"github.com/monocle-dev/studytrack/internal/types"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Addr           string
	DBDriver       string
	DatabaseURL    string
	PostgresDriver string
	JWTSecret      string
	TokenTTL       time.Duration
	BcryptCost     int
	AllowedOrigins string
	LogLevel       string
	LogFormat      string
	GinMode        string
}

func Default() Config {
	return Config{
		Addr:           ":5000",
		DBDriver:       db.DriverSQLite,
		DatabaseURL:    "studytrack.db",
		PostgresDriver: "pgx",
		TokenTTL:       auth.DefaultTokenTTL,
		BcryptCost:     bcrypt.DefaultCost,
		LogLevel:       "info",
		LogFormat:      "console",
		GinMode:        "release",
	}
}

// LoadDotEnv loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// DatabaseFlags are shared by every command touching the database.
func DatabaseFlags(cfg *Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-driver",
			Usage:       "Database dialect: postgres, mysql or sqlite",
			EnvVars:     []string{"DB_DRIVER"},
			Value:       cfg.DBDriver,
			Destination: &cfg.DBDriver,
		},
		&cli.StringFlag{
			Name:        "database-url",
			Usage:       "Database DSN (a file path for sqlite; mysql needs parseTime=true)",
			EnvVars:     []string{"DATABASE_URL"},
			Value:       cfg.DatabaseURL,
			Destination: &cfg.DatabaseURL,
		},
		&cli.StringFlag{
			Name:        "pg-driver",
			Usage:       "database/sql driver under the postgres dialect: pgx or postgres (lib/pq)",
			EnvVars:     []string{"PG_DRIVER"},
			Value:       cfg.PostgresDriver,
			Destination: &cfg.PostgresDriver,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Minimum log level",
			EnvVars:     []string{"LOG_LEVEL"},
			Value:       cfg.LogLevel,
			Destination: &cfg.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log output: console or json",
			EnvVars:     []string{"LOG_FORMAT"},
			Value:       cfg.LogFormat,
			Destination: &cfg.LogFormat,
		},
	}
}

func ServeFlags(cfg *Config) []cli.Flag {
	return append(DatabaseFlags(cfg),
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Address to bind the HTTP server (PORT is honoured when unset)",
			EnvVars:     []string{"ADDR"},
			Value:       cfg.Addr,
			Destination: &cfg.Addr,
		},
		&cli.StringFlag{
			Name:        "jwt-secret",
			Usage:       "Secret used to sign access tokens",
			EnvVars:     []string{"JWT_SECRET"},
			Destination: &cfg.JWTSecret,
		},
		&cli.DurationFlag{
			Name:        "token-ttl",
			Usage:       "Lifetime of issued access tokens",
			EnvVars:     []string{"TOKEN_TTL"},
			Value:       cfg.TokenTTL,
			Destination: &cfg.TokenTTL,
		},
		&cli.IntFlag{
			Name:        "bcrypt-cost",
			Usage:       "bcrypt work factor for new password hashes",
			EnvVars:     []string{"BCRYPT_COST"},
			Value:       cfg.BcryptCost,
			Destination: &cfg.BcryptCost,
		},
		&cli.StringFlag{
			Name:        "allowed-origins",
			Usage:       "Comma separated CORS origins added to the local defaults",
			EnvVars:     []string{"ALLOWED_ORIGINS"},
			Value:       cfg.AllowedOrigins,
			Destination: &cfg.AllowedOrigins,
		},
		&cli.StringFlag{
			Name:        "gin-mode",
			Usage:       "gin mode: debug, release or test",
			EnvVars:     []string{"GIN_MODE"},
			Value:       cfg.GinMode,
			Destination: &cfg.GinMode,
		},
	)
}

// ApplyPort maps a bare PORT variable onto Addr when addr was not given.
func (c *Config) ApplyPort(addrSet bool, getenv func(string) string) {
	if addrSet {
		return
	}
	if port := strings.TrimSpace(getenv("PORT")); port != "" {
		c.Addr = ":" + port
	}
}

func (c Config) Origins() []string {
	origins := make([]string, len(types.DefaultAllowedOrigins))
	copy(origins, types.DefaultAllowedOrigins)

	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

func (c Config) DatabaseOptions() db.Options {
	return db.Options{
		Driver:         c.DBDriver,
		DSN:            c.DatabaseURL,
		PostgresDriver: c.PostgresDriver,
	}
}

func (c Config) ValidateDatabase() error {
	switch c.DBDriver {
	case db.DriverPostgres, db.DriverMySQL, db.DriverSQLite:
	default:
		return fmt.Errorf("unsupported db driver %q", c.DBDriver)
	}

	if c.DatabaseURL == "" {
		return errors.New("database url is required")
	}

	switch c.PostgresDriver {
	case "", "pgx", "postgres":
	default:
		return fmt.Errorf("unsupported postgres driver %q", c.PostgresDriver)
	}

	return nil
}

func (c Config) Validate() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}

	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is not set")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}
