package migrations

import "embed"

// Files holds the forward-only schema migrations for the patient store.
//
//go:embed *.sql
var Files embed.FS
