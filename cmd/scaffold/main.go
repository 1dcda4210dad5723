// scaffold generates Laravel CRUD artifacts from the database schema of
// a model's table.
//
//	scaffold generate Product
//	scaffold generate OrderItem --table order_lines --dry-run
//	scaffold init
//	scaffold serve --addr :8080
package main

import (
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
