package testutil

import (
	"path/filepath"
	"testing"

	"github.com/monocle-dev/studytrack/db"
	"github.com/monocle-dev/studytrack/internal/auth"
	"github.com/monocle-dev/studytrack/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OpenDB migrates a fresh SQLite database in a temporary directory. It is
// closed when the test ends.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "studytrack.db")
	conn, err := db.Open(db.Options{
		Driver: db.DriverSQLite,
		DSN:    path,
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, db.Migrate(conn))
	return conn
}

// NewStore returns a store over OpenDB using the cheapest bcrypt cost.
func NewStore(t testing.TB) *store.Store {
	t.Helper()
	return store.New(OpenDB(t), &auth.BcryptHasher{Cost: bcrypt.MinCost})
}
