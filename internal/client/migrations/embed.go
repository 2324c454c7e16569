// Package migrations embeds the goose migrations for the local cache database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
