package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"insurances/internal/infrastructure/database/schema"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens the SQLite database at path and applies the embedded
// schema. Foreign keys are enabled so hirings cascade with their proposal.
func OpenSQLite(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applySchema(db, schema.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// applySchema executes every .sql file of schemaFS in name order. Statements
// must be idempotent (IF NOT EXISTS).
func applySchema(db *sql.DB, schemaFS fs.FS) error {
	entries, err := fs.ReadDir(schemaFS, ".")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(schemaFS, file)
		if err != nil {
			return fmt.Errorf("read schema %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("exec schema %s: %w", file, err)
		}
	}
	return nil
}
