// Package migrations embeds the goose SQL migrations for the taskman schema.
package migrations

import "embed"

// Migrations holds the embedded SQL migration files, applied at startup.
//
//go:embed *.sql
var Migrations embed.FS
