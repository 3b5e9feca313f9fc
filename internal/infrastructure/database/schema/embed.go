package schema

import "embed"

// FS contains the SQLite schema for proposals and hirings.
//
//go:embed *.sql
var FS embed.FS
