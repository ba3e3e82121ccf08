package infrastructure

import (
	"database/sql"
	"fmt"
	"log"
)

// MigrationsTable -- реестр выполненных миграций.
type MigrationsTable struct{}

func (m *MigrationsTable) UpMigration(db *sql.DB) error {
	query := `
	CREATE SCHEMA IF NOT EXISTS migrations;
	CREATE TABLE IF NOT EXISTS migrations.migrations (
		name VARCHAR(255) PRIMARY KEY,
		time TIMESTAMP WITH TIME ZONE NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations registry: %w", err)
	}
	return nil
}

func CheckAndSkipMigration(db *sql.DB, name string) (bool, error) {
	var migrationExists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = $1)", name).Scan(&migrationExists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	if migrationExists {
		log.Printf("Migration '%s' already completed. Skipping.", name)
		return true, nil
	}
	return false, nil
}

func ExecuteAndMarkMigration(db *sql.DB, query, name string) error {
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to execute '%s' migration: %w", name, err)
	}
	if _, err := db.Exec("INSERT INTO migrations.migrations (name, time) VALUES ($1, current_timestamp)", name); err != nil {
		return fmt.Errorf("failed to mark '%s' migration as complete: %w", name, err)
	}
	return nil
}
