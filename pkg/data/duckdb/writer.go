package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

const createStudyTable = `CREATE TABLE IF NOT EXISTS study_results (
	run_id VARCHAR NOT NULL,
	rep INTEGER NOT NULL,
	theta VARCHAR NOT NULL,
	j DOUBLE NOT NULL,
	p_value DOUBLE,
	rejected BOOLEAN NOT NULL,
	converged BOOLEAN NOT NULL
)`

type Writer struct {
	dataSourceName string
	db             *sql.DB
}

func NewWriter(dataSourceName string) *Writer {
	return &Writer{
		dataSourceName: dataSourceName,
	}
}

func (w *Writer) Connect() error {
	db, err := sql.Open("duckdb", w.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	w.db = db
	return nil
}

func (w *Writer) Close() {
	_ = w.db.Close()
}

// SaveStudy writes every replication row in a single transaction, creating
// the results table on first use.
func (w *Writer) SaveStudy(ctx context.Context, rows []Row) error {
	if _, err := w.db.ExecContext(ctx, createStudyTable); err != nil {
		return fmt.Errorf("creating study_results: %w", err)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO study_results (run_id, rep, theta, j, p_value, rejected, converged) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmt)

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			row.RunID, row.Rep, encodeTheta(row.Theta), row.J, row.PValue, row.Rejected, row.Converged); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("inserting rep %d: %w", row.Rep, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing study rows: %w", err)
	}
	return nil
}
