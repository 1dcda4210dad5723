package sql

import (
	"fmt"
	"net"
	"net/url"
	"path/filepath"

	"github.com/go-sql-driver/mysql"

	"github.com/StaffITSAP/CRUD-Generator-Laravel/dialect"
)

// Params holds the connection settings of a Laravel project.
type Params struct {
	Connection string // DB_CONNECTION
	Host       string // DB_HOST
	Port       string // DB_PORT
	Database   string // DB_DATABASE
	Username   string // DB_USERNAME
	Password   string // DB_PASSWORD
}

// DSN returns the dialect and data source name for p. Relative SQLite
// database paths are resolved against root.
func DSN(root string, p Params) (string, string, error) {
	d, err := dialect.FromConnection(p.Connection)
	if err != nil {
		return "", "", err
	}
	switch d {
	case dialect.MySQL:
		cfg := mysql.NewConfig()
		cfg.User = p.Username
		cfg.Passwd = p.Password
		cfg.Net = "tcp"
		cfg.Addr = hostPort(p.Host, p.Port, "3306")
		cfg.DBName = p.Database
		cfg.ParseTime = true
		return d, cfg.FormatDSN(), nil
	case dialect.Postgres:
		u := url.URL{
			Scheme:   "postgres",
			Host:     hostPort(p.Host, p.Port, "5432"),
			Path:     "/" + p.Database,
			RawQuery: "sslmode=disable",
		}
		if p.Username != "" {
			u.User = url.UserPassword(p.Username, p.Password)
		}
		return d, u.String(), nil
	default:
		path := p.Database
		if path == "" {
			path = filepath.Join("database", "database.sqlite")
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		return d, fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path), nil
	}
}

func hostPort(host, port, defPort string) string {
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = defPort
	}
	return net.JoinHostPort(host, port)
}
