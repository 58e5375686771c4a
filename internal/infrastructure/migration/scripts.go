package migration

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed scripts/mysql/*.sql scripts/sqlite/*.sql
var embeddedScripts embed.FS

// ScriptsDir is the source tree location of the scripts, used by
// `migrate create`.
const ScriptsDir = "internal/infrastructure/migration/scripts"

// DialectFor maps a database.driver value onto the goose dialect and the
// matching script directory.
func DialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case "", "mysql":
		return goose.DialectMySQL, "mysql", nil
	case "sqlite":
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func scriptsFS(dir string) (fs.FS, error) {
	sub, err := fs.Sub(embeddedScripts, "scripts/"+dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded %s scripts: %w", dir, err)
	}
	return sub, nil
}
