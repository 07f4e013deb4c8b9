package migrations

import "embed"

// FS contains embedded goose migrations for the battle report archive.
//
//go:embed *.sql
var FS embed.FS
