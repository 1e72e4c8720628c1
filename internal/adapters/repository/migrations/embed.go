// Package migrations embeds the SQL schema for the match repository.
package migrations

import "embed"

// FS holds the ordered schema files.
//
//go:embed *.sql
var FS embed.FS
