// Package migrations embeds the SQL schema migrations so a built binary
// never depends on files on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
