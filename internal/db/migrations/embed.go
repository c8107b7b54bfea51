// Package migrations holds the goose SQL migrations, embedded into the binary
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Dir is the directory goose reads from when FS is set as its base
const Dir = "."
