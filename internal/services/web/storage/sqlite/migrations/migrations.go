// Package migrations embeds the web session store schema.
package migrations

import "embed"

// FS holds numbered golang-migrate files.
//
//go:embed *.sql
var FS embed.FS
