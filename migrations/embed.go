// Package migrations embeds SQL migration files into the binary, so the
// server can migrate its schema without the files present on disk.
package migrations

import (
	"embed"

	"github.com/lvroom/living-room-api/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	// The embed directive above captures all .sql files in this directory.
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "."
}
