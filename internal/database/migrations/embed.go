// Package migrations embeds the schema migration files shipped with the
// binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
