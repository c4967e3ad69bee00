package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/monocle-dev/studytrack/internal/models"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Options struct {
	Driver string
	DSN    string
	// PostgresDriver is the database/sql driver name under the postgres
	// dialector: "pgx" (default) or "postgres" (lib/pq, registered by the
	// import in errors.go).
	PostgresDriver string
	Logger         zerolog.Logger
}

func dialector(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case DriverPostgres:
		cfg := postgres.Config{DSN: opts.DSN}
		if opts.PostgresDriver != "" && opts.PostgresDriver != "pgx" {
			cfg.DriverName = opts.PostgresDriver
		}
		return postgres.New(cfg), nil
	case DriverMySQL:
		return mysql.Open(opts.DSN), nil
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(opts.DSN)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", opts.Driver)
	}
}

// sqliteDefaults make every transaction take the write lock at BEGIN and
// wait for it, so overlapping read-then-write transactions queue up instead
// of failing with SQLITE_BUSY. WAL keeps readers off the writer's path.
var sqliteDefaults = []struct{ key, value string }{
	{"_txlock", "immediate"},
	{"_busy_timeout", "5000"},
	{"_journal_mode", "WAL"},
}

// sqliteDSN appends sqliteDefaults to dsn, leaving any parameter the caller
// already set untouched.
func sqliteDSN(dsn string) string {
	var b strings.Builder
	b.WriteString(dsn)

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	for _, p := range sqliteDefaults {
		if strings.Contains(dsn, p.key+"=") {
			continue
		}
		b.WriteString(sep)
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
		sep = "&"
	}

	return b.String()
}

// Open connects to the configured database. The returned handle is safe for
// concurrent use; callers scope it per request with WithContext.
func Open(opts Options) (*gorm.DB, error) {
	d, err := dialector(opts)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger.With().Str("component", "gorm").Logger()

	conn, err := gorm.Open(d, &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(&logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})

	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", opts.Driver, err)
	}

	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.Course{},
		&models.Assignment{},
	}

	for _, model := range models {
		if err := conn.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	return nil
}
