// Package sql wraps database/sql connections for schema introspection.
//
// A Driver pairs a connection with the dialect it speaks, so the
// introspection layer can choose dialect-specific catalog queries:
//
//	drv, err := sql.Open(dialect.MySQL, dsn)
//	if err != nil {
//	    return err
//	}
//	defer drv.Close()
//
// # Laravel Environment
//
// DSN builds a data source name from the DB_* variables of a Laravel
// .env file:
//
//	d, dsn, err := sql.DSN(root, sql.Params{
//	    Connection: "mysql",
//	    Host:       "127.0.0.1",
//	    Database:   "shop",
//	    Username:   "root",
//	})
//
// SQLite databases are resolved relative to the project root, matching
// Laravel's database/database.sqlite convention.
package sql
