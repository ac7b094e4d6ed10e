// Package sqlitemigrations embeds the SQLite schema applied by golang-migrate.
package sqlitemigrations

import "embed"

//go:embed *.sql
var FS embed.FS
