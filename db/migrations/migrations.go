// Package migrations embeds the catalog schema applied by internal/db.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
