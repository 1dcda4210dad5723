package sql

import (
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect"
)

func TestDSN(t *testing.T) {
	t.Run("mysql", func(t *testing.T) {
		d, dsn, err := DSN("/app", Params{
			Connection: "mysql",
			Host:       "db",
			Database:   "shop",
			Username:   "root",
			Password:   "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, dialect.MySQL, d)

		cfg, err := mysql.ParseDSN(dsn)
		require.NoError(t, err)
		assert.Equal(t, "root", cfg.User)
		assert.Equal(t, "secret", cfg.Passwd)
		assert.Equal(t, "db:3306", cfg.Addr)
		assert.Equal(t, "shop", cfg.DBName)
		assert.True(t, cfg.ParseTime)
	})

	t.Run("postgres", func(t *testing.T) {
		d, dsn, err := DSN("/app", Params{
			Connection: "pgsql",
			Port:       "6432",
			Database:   "shop",
			Username:   "app",
			Password:   "pw",
		})
		require.NoError(t, err)
		assert.Equal(t, dialect.Postgres, d)
		assert.Equal(t, "postgres://app:pw@127.0.0.1:6432/shop?sslmode=disable", dsn)
	})

	t.Run("sqlite default path", func(t *testing.T) {
		d, dsn, err := DSN("/app", Params{Connection: "sqlite"})
		require.NoError(t, err)
		assert.Equal(t, dialect.SQLite, d)
		assert.Equal(t, "file:"+filepath.Join("/app", "database", "database.sqlite")+"?_pragma=foreign_keys(1)", dsn)
	})

	t.Run("sqlite absolute path", func(t *testing.T) {
		_, dsn, err := DSN("/app", Params{Connection: "sqlite", Database: "/data/app.db"})
		require.NoError(t, err)
		assert.Equal(t, "file:/data/app.db?_pragma=foreign_keys(1)", dsn)
	})

	t.Run("unsupported connection", func(t *testing.T) {
		_, _, err := DSN("/app", Params{Connection: "sqlsrv"})
		require.Error(t, err)
	})
}
