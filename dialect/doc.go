// Package dialect names the database dialects the scaffolder can introspect.
//
// # Supported Dialects
//
// The following dialects are supported:
//
//   - MySQL: MySQL/MariaDB database
//   - Postgres: PostgreSQL database
//   - SQLite: SQLite database
//
// # Dialect Constants
//
// Each dialect is identified by a constant string that doubles as the
// database/sql driver name:
//
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//	dialect.SQLite   = "sqlite"
//
// # Laravel Connections
//
// Laravel projects declare their connection in .env as DB_CONNECTION.
// FromConnection maps those names to a dialect:
//
//	d, err := dialect.FromConnection("pgsql") // dialect.Postgres
//
// # Sub-packages
//
//   - dialect/sql: driver wrapper and DSN construction
//   - dialect/sql/schema: table introspection
package dialect
