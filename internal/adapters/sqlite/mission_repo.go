// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/mclock/internal/ports/secondary"
)

// MissionRepository implements secondary.MissionStore with SQLite.
type MissionRepository struct {
	db    *sql.DB
	label string
}

// NewMissionRepository creates a new SQLite mission repository.
// label names the database in logs, typically its file path.
func NewMissionRepository(db *sql.DB, label string) *MissionRepository {
	if label == "" {
		label = "sqlite"
	}
	return &MissionRepository{db: db, label: label}
}

// Describe names the source for logs.
func (r *MissionRepository) Describe() string { return r.label }

// Records returns stored definitions in position order as source records.
func (r *MissionRepository) Records(ctx context.Context) ([]secondary.MissionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT position, name, start_date, end_date FROM missions ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list missions: %w", secondary.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var records []secondary.MissionRecord
	for rows.Next() {
		var (
			position         int
			name, start, end string
		)
		if err := rows.Scan(&position, &name, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: failed to scan mission: %w", secondary.ErrSourceUnavailable, err)
		}
		records = append(records, secondary.MissionRecord{
			Line:   position,
			Raw:    fmt.Sprintf("%s,%s,%s", name, start, end),
			Fields: []string{name, start, end},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", secondary.ErrSourceUnavailable, err)
	}

	return records, nil
}

// Replace swaps every stored definition for defs in a single transaction.
// Positions are assigned from 1 in slice order.
func (r *MissionRepository) Replace(ctx context.Context, defs []secondary.MissionDefinition) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM missions"); err != nil {
		return fmt.Errorf("failed to clear missions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO missions (position, name, start_date, end_date) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range defs {
		if _, err := stmt.ExecContext(ctx, i+1, d.Name, d.StartDate, d.EndDate); err != nil {
			return fmt.Errorf("failed to insert mission %q: %w", d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit missions: %w", err)
	}
	return nil
}

// Count returns the number of stored definitions.
func (r *MissionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM missions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count missions: %w", err)
	}
	return count, nil
}

var _ secondary.MissionStore = (*MissionRepository)(nil)
