package dialect

import (
	"fmt"
	"strings"
)

// Dialect names supported by the scaffolder.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// FromConnection returns the dialect for a Laravel DB_CONNECTION value.
func FromConnection(conn string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(conn)) {
	case "mysql", "mariadb":
		return MySQL, nil
	case "pgsql", "postgres", "postgresql":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("dialect: unsupported connection %q", conn)
	}
}
