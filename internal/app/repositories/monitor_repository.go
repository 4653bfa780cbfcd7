package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
	"github.com/lucasmt/monitoria/internal/pkg/dberrors"
)

const monitorNationalIDConstraint = "monitors_national_id_key"

// MonitorRepository handles database operations for staff accounts
type MonitorRepository struct {
	db *pgxpool.Pool
}

// NewMonitorRepository creates a new monitor repository
func NewMonitorRepository(db *pgxpool.Pool) *MonitorRepository {
	return &MonitorRepository{
		db: db,
	}
}

// GetAll retrieves all monitors with their school names
func (r *MonitorRepository) GetAll(ctx context.Context) ([]*models.Monitor, error) {
	query := `
		SELECT m.id, m.name, m.national_id, m.role, m.school_id, s.name
		FROM monitors m
		LEFT JOIN schools s ON m.school_id = s.id
		ORDER BY m.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing monitors: %w", err)
	}
	defer rows.Close()

	var monitors []*models.Monitor
	for rows.Next() {
		var monitor models.Monitor
		if err := rows.Scan(
			&monitor.ID,
			&monitor.Name,
			&monitor.NationalID,
			&monitor.Role,
			&monitor.SchoolID,
			&monitor.SchoolName,
		); err != nil {
			return nil, err
		}
		monitors = append(monitors, &monitor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return monitors, nil
}

// GetByID retrieves a monitor by ID
func (r *MonitorRepository) GetByID(ctx context.Context, id int64) (*models.Monitor, error) {
	query := `
		SELECT id, name, national_id, role, school_id, password_hash
		FROM monitors
		WHERE id = $1
	`

	var monitor models.Monitor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&monitor.ID,
		&monitor.Name,
		&monitor.NationalID,
		&monitor.Role,
		&monitor.SchoolID,
		&monitor.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMonitorNotInScope
		}
		return nil, fmt.Errorf("error retrieving monitor: %w", err)
	}

	return &monitor, nil
}

// GetByName retrieves a monitor by login name. Used only by login
// verification.
func (r *MonitorRepository) GetByName(ctx context.Context, name string) (*models.Monitor, error) {
	query := `
		SELECT id, name, national_id, role, school_id, password_hash
		FROM monitors
		WHERE name = $1
	`

	var monitor models.Monitor
	err := r.db.QueryRow(ctx, query, name).Scan(
		&monitor.ID,
		&monitor.Name,
		&monitor.NationalID,
		&monitor.Role,
		&monitor.SchoolID,
		&monitor.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving monitor by name: %w", err)
	}

	return &monitor, nil
}

// Create creates a new monitor. The national-ID uniqueness pre-check and
// the insert run in one transaction; the schema constraint backstops the
// concurrent-create race.
func (r *MonitorRepository) Create(ctx context.Context, monitor *models.Monitor) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM monitors WHERE national_id = $1)`,
		monitor.NationalID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking national ID uniqueness: %w", err)
	}
	if exists {
		return apperrors.ErrNationalIDExists
	}

	query := `
		INSERT INTO monitors (name, national_id, role, school_id, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		monitor.Name, monitor.NationalID, monitor.Role, monitor.SchoolID, monitor.PasswordHash,
	).Scan(&monitor.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, monitorNationalIDConstraint) {
			return apperrors.ErrNationalIDExists
		}
		return fmt.Errorf("error creating monitor: %w", err)
	}

	return tx.Commit(ctx)
}

// Update updates a monitor in place. The uniqueness check excludes the row
// itself so saving unchanged data is never a conflict. An empty
// PasswordHash leaves the stored credential untouched.
func (r *MonitorRepository) Update(ctx context.Context, monitor *models.Monitor) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM monitors WHERE national_id = $1 AND id != $2)`,
		monitor.NationalID, monitor.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking national ID uniqueness: %w", err)
	}
	if exists {
		return apperrors.ErrNationalIDExists
	}

	var cmdTag pgconn.CommandTag
	if monitor.PasswordHash != "" {
		cmdTag, err = tx.Exec(ctx, `
			UPDATE monitors
			SET name = $1, national_id = $2, role = $3, school_id = $4, password_hash = $5
			WHERE id = $6`,
			monitor.Name, monitor.NationalID, monitor.Role, monitor.SchoolID, monitor.PasswordHash, monitor.ID)
	} else {
		cmdTag, err = tx.Exec(ctx, `
			UPDATE monitors
			SET name = $1, national_id = $2, role = $3, school_id = $4
			WHERE id = $5`,
			monitor.Name, monitor.NationalID, monitor.Role, monitor.SchoolID, monitor.ID)
	}
	if err != nil {
		if dberrors.IsUniqueViolation(err, monitorNationalIDConstraint) {
			return apperrors.ErrNationalIDExists
		}
		return fmt.Errorf("error updating monitor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMonitorNotInScope
	}

	return tx.Commit(ctx)
}

// Delete deletes a monitor by ID
func (r *MonitorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM monitors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting monitor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMonitorNotInScope
	}

	return nil
}
