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

// ObservationRepository handles database operations for behavioral
// observations. Rows carry no school column; scoping always goes through
// the parent student.
type ObservationRepository struct {
	db *pgxpool.Pool
}

// NewObservationRepository creates a new observation repository
func NewObservationRepository(db *pgxpool.Pool) *ObservationRepository {
	return &ObservationRepository{
		db: db,
	}
}

// ListByStudent retrieves a student's observations, newest first. The
// caller has already resolved the student under scope.
func (r *ObservationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Observation, error) {
	query := `
		SELECT o.id, o.student_id, o.date, o.discipline, o.kind, o.description, o.consequence,
		       st.name, st.class_label
		FROM observations o
		JOIN students st ON o.student_id = st.id
		WHERE o.student_id = $1
		ORDER BY o.date DESC, o.id DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing observations: %w", err)
	}
	defer rows.Close()

	var observations []*models.Observation
	for rows.Next() {
		var observation models.Observation
		if err := rows.Scan(
			&observation.ID,
			&observation.StudentID,
			&observation.Date,
			&observation.Discipline,
			&observation.Kind,
			&observation.Description,
			&observation.Consequence,
			&observation.StudentName,
			&observation.StudentClass,
		); err != nil {
			return nil, err
		}
		observations = append(observations, &observation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return observations, nil
}

// GetByID retrieves an observation by ID within the given scope. The scope
// is applied through the parent student's school.
func (r *ObservationRepository) GetByID(ctx context.Context, id int64, scope *int64) (*models.Observation, error) {
	query := `
		SELECT o.id, o.student_id, o.date, o.discipline, o.kind, o.description, o.consequence
		FROM observations o
		JOIN students st ON o.student_id = st.id
		WHERE o.id = $1
	`
	args := []any{id}
	if scope != nil {
		query += ` AND st.school_id = $2`
		args = append(args, *scope)
	}

	var observation models.Observation
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&observation.ID,
		&observation.StudentID,
		&observation.Date,
		&observation.Discipline,
		&observation.Kind,
		&observation.Description,
		&observation.Consequence,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrObservationNotInScope
		}
		return nil, fmt.Errorf("error retrieving observation: %w", err)
	}

	return &observation, nil
}

// Create records an observation
func (r *ObservationRepository) Create(ctx context.Context, observation *models.Observation) error {
	query := `
		INSERT INTO observations (student_id, date, discipline, kind, description, consequence)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		observation.StudentID,
		observation.Date,
		observation.Discipline,
		observation.Kind,
		observation.Description,
		observation.Consequence,
	).Scan(&observation.ID)
	if err != nil {
		return fmt.Errorf("error creating observation: %w", err)
	}

	return nil
}

// Update updates an observation's mutable fields. The student reference is
// immutable; an observation stays attached to the student it was recorded
// for.
func (r *ObservationRepository) Update(ctx context.Context, observation *models.Observation) error {
	query := `
		UPDATE observations
		SET date = $1, discipline = $2, kind = $3, description = $4, consequence = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		observation.Date,
		observation.Discipline,
		observation.Kind,
		observation.Description,
		observation.Consequence,
		observation.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating observation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrObservationNotInScope
	}

	return nil
}

// Delete deletes an observation by ID
func (r *ObservationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM observations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting observation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrObservationNotInScope
	}

	return nil
}
