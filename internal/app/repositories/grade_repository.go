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

// GradeRepository handles database operations for grades. Scoping uses the
// denormalized school_id column, so no join with students is needed.
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
	}
}

// ListByStudent retrieves a student's grades within the given scope,
// newest first
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID int64, scope *int64) ([]*models.Grade, error) {
	query := `
		SELECT id, student_id, subject_id, value, date, school_id
		FROM grades
		WHERE student_id = $1
	`
	args := []any{studentID}
	if scope != nil {
		query += ` AND school_id = $2`
		args = append(args, *scope)
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.SubjectID,
			&grade.Value,
			&grade.Date,
			&grade.SchoolID,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}

// GetByID retrieves a grade by ID within the given scope
func (r *GradeRepository) GetByID(ctx context.Context, id int64, scope *int64) (*models.Grade, error) {
	query := `
		SELECT id, student_id, subject_id, value, date, school_id
		FROM grades
		WHERE id = $1
	`
	args := []any{id}
	if scope != nil {
		query += ` AND school_id = $2`
		args = append(args, *scope)
	}

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.SubjectID,
		&grade.Value,
		&grade.Date,
		&grade.SchoolID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotInScope
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// Create records a grade. The caller has already resolved the parent
// student under scope and copied its school into grade.SchoolID.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, subject_id, value, date, school_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		grade.StudentID, grade.SubjectID, grade.Value, grade.Date, grade.SchoolID,
	).Scan(&grade.ID)
	if err != nil {
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// UpdateValue changes a grade's numeric value
func (r *GradeRepository) UpdateValue(ctx context.Context, id int64, value float64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE grades SET value = $1 WHERE id = $2`, value, id)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotInScope
	}

	return nil
}

// Delete deletes a grade by ID
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotInScope
	}

	return nil
}
