package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. The
// golang-migrate library reads them through the iofs driver when applying
// migrations on startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects.
const Version = 1
