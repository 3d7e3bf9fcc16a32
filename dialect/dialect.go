// Package dialect defines the output variants quill can target and the
// snippet emitter that renders one logical code fragment for one or more of
// them.
//
// A dialect is one of several mutually exclusive output flavors for which
// the same logical snippet may need distinct textual forms, typically a SQL
// flavor. Each dialect is identified by a constant string:
//
//	dialect.SQLite   = "sqlite"
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//
// When a generation run targets a single dialect, snippets embed as plain
// text. When it targets several, the emitter produces a mapping literal with
// one entry per dialect, in the configured dialect order, so that output is
// byte-stable across runs.
package dialect

// Supported dialect names.
const (
	// SQLite is the sqlite3 dialect.
	SQLite = "sqlite"
	// MySQL is the mysql/mariadb dialect.
	MySQL = "mysql"
	// Postgres is the postgresql dialect.
	Postgres = "postgres"
)

// All lists the supported dialect names.
var All = []string{SQLite, MySQL, Postgres}

// Valid reports whether name is a supported dialect.
func Valid(name string) bool {
	for _, d := range All {
		if d == name {
			return true
		}
	}
	return false
}
