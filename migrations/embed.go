// Package migrations embeds the goose SQL migrations.
package migrations

import "embed"

// FS holds every migration file, named in goose's NNNNN_name.sql form.
//
//go:embed *.sql
var FS embed.FS
