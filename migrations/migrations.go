// Package migrations embeds the SQL schema files.
package migrations

import "embed"

// FS holds every *.sql file of this directory, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
