package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLiteDSN(t *testing.T) {
	tests := map[string]struct {
		dsn  string
		want string
	}{
		"plain path": {
			dsn:  "studytrack.db",
			want: "studytrack.db?_txlock=immediate&_busy_timeout=5000&_journal_mode=WAL",
		},
		"existing query": {
			dsn:  "file:studytrack.db?cache=shared",
			want: "file:studytrack.db?cache=shared&_txlock=immediate&_busy_timeout=5000&_journal_mode=WAL",
		},
		"caller overrides": {
			dsn:  "studytrack.db?_busy_timeout=100&_journal_mode=DELETE",
			want: "studytrack.db?_busy_timeout=100&_journal_mode=DELETE&_txlock=immediate",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}
