package db

import "database/sql"

// SchemaVersion is the version recorded for a schema created by SchemaSQL.
const SchemaVersion = 1

// SchemaSQL is the complete schema for the mission store.
//
// Only mission definitions live here. Elapsed and remaining times are
// derived on every refresh and are never stored.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests use
// it via GetSchemaSQL() rather than hardcoding CREATE TABLE statements.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS missions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	position INTEGER NOT NULL UNIQUE,
	name TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the schema on a fresh database and records its version.
// It is safe to call on an existing database.
func InitSchema(conn *sql.DB) error {
	if _, err := conn.Exec(SchemaSQL); err != nil {
		return err
	}
	_, err := conn.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
