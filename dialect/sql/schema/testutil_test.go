package schema

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect"
	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect/sql"
)

var shopDDL = []string{
	"CREATE TABLE `categories` (`id` integer NOT NULL PRIMARY KEY AUTOINCREMENT, `name` varchar(255) NOT NULL, `created_at` datetime NULL, `updated_at` datetime NULL);",
	"CREATE TABLE `products` (`id` integer NOT NULL PRIMARY KEY AUTOINCREMENT, `name` varchar(255) NOT NULL, `price` decimal(10,2) NOT NULL, `category_id` integer NOT NULL REFERENCES `categories` (`id`), `note` text NULL, `is_active` boolean NOT NULL DEFAULT 1, `meta` json NULL, `created_at` datetime NULL, `updated_at` datetime NULL, `deleted_at` datetime NULL);",
}

func openSQLite(t *testing.T, stmts ...string) *sql.Driver {
	t.Helper()
	drv, err := sql.Open(dialect.SQLite, "file:"+filepath.Join(t.TempDir(), "test.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = drv.Close() })
	for _, stmt := range stmts {
		_, err := drv.ExecContext(context.Background(), stmt)
		require.NoError(t, err)
	}
	return drv
}
