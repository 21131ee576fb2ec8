// Package migrations embeds the SQL migration files so the goose
// programmatic API can apply them at server bootstrap and in test setup.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time, so the
// binary never depends on a migrations directory existing at runtime.
//
//go:embed *.sql
var FS embed.FS
