package journal

import (
	"database/sql"
	"fmt"
	"log"

	"gomarketsync_api/migrations/infrastructure"
)

type CreateSyncSchema struct{}

func (m *CreateSyncSchema) UpMigration(db *sql.DB) error {
	query := `
	CREATE SCHEMA IF NOT EXISTS sync;`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create schema sync: %w", err)
	}
	return nil
}

type SyncRunsTable struct{}

func (m *SyncRunsTable) UpMigration(db *sql.DB) error {
	if ok, err := infrastructure.CheckAndSkipMigration(db, "sync.runs"); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE TABLE IF NOT EXISTS sync.runs (
		run_id SERIAL PRIMARY KEY,
		marketplace VARCHAR(32) NOT NULL,
		campaign_id VARCHAR(64),
		started_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		finished_at TIMESTAMP WITH TIME ZONE,
		status VARCHAR(16) NOT NULL DEFAULT 'running',
		error TEXT
	);`
	if err := infrastructure.ExecuteAndMarkMigration(db, query, "sync.runs"); err != nil {
		return err
	}
	log.Println("Migration 'sync.runs' completed successfully.")
	return nil
}

type SyncBatchesTable struct{}

func (m *SyncBatchesTable) UpMigration(db *sql.DB) error {
	if ok, err := infrastructure.CheckAndSkipMigration(db, "sync.batches"); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE TABLE IF NOT EXISTS sync.batches (
		batch_id SERIAL PRIMARY KEY,
		run_id INT NOT NULL,
		kind VARCHAR(16) NOT NULL, -- stocks / prices
		item_count INT NOT NULL,
		status_code INT,
		pushed_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		FOREIGN KEY(run_id) REFERENCES sync.runs(run_id)
	);`
	if err := infrastructure.ExecuteAndMarkMigration(db, query, "sync.batches"); err != nil {
		return err
	}
	log.Println("Migration 'sync.batches' completed successfully.")
	return nil
}
