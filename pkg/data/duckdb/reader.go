package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

// LoadStudy streams the stored replications of a run through the handler,
// in replication order.
func (r *Reader) LoadStudy(ctx context.Context, runID string, handler func(Row) error) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT run_id, rep, theta, j, p_value, rejected, converged FROM study_results WHERE run_id = ? ORDER BY rep`, runID)
	if err != nil {
		return fmt.Errorf("querying study_results: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var (
			row      Row
			rawTheta string
		)
		if err := rows.Scan(&row.RunID, &row.Rep, &rawTheta, &row.J, &row.PValue, &row.Rejected, &row.Converged); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		if row.Theta, err = decodeTheta(rawTheta); err != nil {
			return err
		}
		if err := handler(row); err != nil {
			return fmt.Errorf("handling row: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}
	return nil
}
