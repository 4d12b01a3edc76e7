// Package schema locates the PostgreSQL schema of the league database.
package schema

import (
	"path/filepath"
	"runtime"
)

// File is the name of the schema script kept next to this package.
const File = "schema.sql"

// Path returns the absolute path of the schema script, so callers in any
// package directory can hand it to psql or an init hook.
func Path() string {
	_, src, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(src), File)
}
