package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
	}
}

// List retrieves subjects joined with their school name. A non-nil scope
// limits rows to that school; schoolID is an additional optional filter
// used by administrators.
func (r *SubjectRepository) List(ctx context.Context, scope *int64, schoolID *int64) ([]*models.Subject, error) {
	query := `
		SELECT su.id, su.name, su.school_id, s.name
		FROM subjects su
		JOIN schools s ON su.school_id = s.id
		WHERE 1=1
	`
	args := []any{}

	if scope != nil {
		args = append(args, *scope)
		query += fmt.Sprintf(" AND su.school_id = $%d", len(args))
	}
	if schoolID != nil {
		args = append(args, *schoolID)
		query += fmt.Sprintf(" AND su.school_id = $%d", len(args))
	}

	query += " ORDER BY s.name, su.name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.SchoolID, &subject.SchoolName); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// GetByID retrieves a subject by ID within the given scope
func (r *SubjectRepository) GetByID(ctx context.Context, id int64, scope *int64) (*models.Subject, error) {
	query := `
		SELECT id, name, school_id
		FROM subjects
		WHERE id = $1
	`
	args := []any{id}
	if scope != nil {
		query += ` AND school_id = $2`
		args = append(args, *scope)
	}

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, args...).Scan(&subject.ID, &subject.Name, &subject.SchoolID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotInScope
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// Create creates a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, school_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, subject.Name, subject.SchoolID).Scan(&subject.ID)
	if err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// UpdateName renames a subject
func (r *SubjectRepository) UpdateName(ctx context.Context, id int64, name string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE subjects SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotInScope
	}

	return nil
}

// Delete deletes a subject unless an observation still references it by
// name. Observations carry the discipline as free text, so the check is a
// textual match, not a foreign key.
func (r *SubjectRepository) Delete(ctx context.Context, id int64, name string) error {
	var referenced bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM observations WHERE discipline = $1)`,
		name).Scan(&referenced)
	if err != nil {
		return fmt.Errorf("error checking observation references: %w", err)
	}
	if referenced {
		return apperrors.ErrSubjectInUse
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotInScope
	}

	return nil
}
