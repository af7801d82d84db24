// Package migrations embeds the MongoDB index migrations applied at startup.
package migrations

import "embed"

// FS holds the *.json migration files in golang-migrate naming order.
//
//go:embed *.json
var FS embed.FS
