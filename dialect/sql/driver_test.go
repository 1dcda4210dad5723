package sql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect"
)

// TestOpenDB tests the OpenDB function with different dialects.
func TestOpenDB(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
	}{
		{"Postgres", dialect.Postgres},
		{"MySQL", dialect.MySQL},
		{"SQLite", dialect.SQLite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			drv := OpenDB(tt.dialect, db)
			assert.NotNil(t, drv)
			assert.Equal(t, tt.dialect, drv.Dialect())
			assert.Same(t, db, drv.DB())
		})
	}
}

func TestDriverDialectPrefix(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	drv := OpenDB("mysql-traced", db)
	assert.Equal(t, dialect.MySQL, drv.Dialect())

	drv = OpenDB("custom", db)
	assert.Equal(t, "custom", drv.Dialect())
}

func TestDriverPingClose(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	drv := OpenDB(dialect.MySQL, db)
	mock.ExpectPing()
	require.NoError(t, drv.Ping(context.Background()))
	mock.ExpectClose()
	require.NoError(t, drv.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"products", true},
		{"order_items", true},
		{"public.users", true},
		{"_tmp", true},
		{"", false},
		{"1table", false},
		{"users; DROP TABLE users", false},
		{"users`", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidIdentifier(tt.input))
		})
	}
}
