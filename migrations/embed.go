// Package migrations embebe los scripts SQL versionados de golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
