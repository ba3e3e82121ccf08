package journal

import (
	"database/sql"
	"fmt"
	"strings"
)

// BatchRecord -- итог одного отправленного батча.
type BatchRecord struct {
	Kind       string // stocks / prices
	ItemCount  int
	StatusCode int
}

// Journal ведет учет прогонов синхронизации и отправленных батчей.
type Journal interface {
	StartRun(marketplace, campaignID string) (int64, error)
	RecordBatches(runID int64, batches []BatchRecord) error
	FinishRun(runID int64, runErr error) error
}

// Noop используется, когда журнал выключен в конфиге.
type Noop struct{}

func (Noop) StartRun(string, string) (int64, error)      { return 0, nil }
func (Noop) RecordBatches(int64, []BatchRecord) error    { return nil }
func (Noop) FinishRun(int64, error) error                { return nil }

type PgJournal struct {
	db *sql.DB
}

func NewPgJournal(db *sql.DB) *PgJournal {
	return &PgJournal{db: db}
}

func (j *PgJournal) StartRun(marketplace, campaignID string) (int64, error) {
	var runID int64
	err := j.db.QueryRow(
		`INSERT INTO sync.runs (marketplace, campaign_id) VALUES ($1, $2) RETURNING run_id`,
		marketplace, campaignID,
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to start sync run: %w", err)
	}
	return runID, nil
}

func (j *PgJournal) RecordBatches(runID int64, batches []BatchRecord) error {
	if len(batches) == 0 {
		return nil
	}

	query := `INSERT INTO sync.batches (run_id, kind, item_count, status_code) VALUES `

	valueStrings := make([]string, 0, len(batches))
	args := make([]interface{}, 0, len(batches)*4)
	for i, batch := range batches {
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4))
		args = append(args, runID, batch.Kind, batch.ItemCount, batch.StatusCode)
	}
	query += strings.Join(valueStrings, ", ")

	if _, err := j.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to record sync batches: %w", err)
	}
	return nil
}

func (j *PgJournal) FinishRun(runID int64, runErr error) error {
	status := "ok"
	var errText sql.NullString
	if runErr != nil {
		status = "failed"
		errText = sql.NullString{String: runErr.Error(), Valid: true}
	}
	_, err := j.db.Exec(
		`UPDATE sync.runs SET finished_at = NOW(), status = $2, error = $3 WHERE run_id = $1`,
		runID, status, errText,
	)
	if err != nil {
		return fmt.Errorf("failed to finish sync run: %w", err)
	}
	return nil
}
