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

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
	}
}

// GetAll retrieves schools ordered by name, optionally limited to one school
func (r *SchoolRepository) GetAll(ctx context.Context, scope *int64) ([]*models.School, error) {
	query := `
		SELECT id, name
		FROM schools
	`
	args := []any{}
	if scope != nil {
		query += ` WHERE id = $1`
		args = append(args, *scope)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing schools: %w", err)
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		var school models.School
		if err := rows.Scan(&school.ID, &school.Name); err != nil {
			return nil, err
		}
		schools = append(schools, &school)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schools, nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	query := `
		SELECT id, name
		FROM schools
		WHERE id = $1
	`

	var school models.School
	err := r.db.QueryRow(ctx, query, id).Scan(&school.ID, &school.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotInScope
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}

	return &school, nil
}

// Exists checks whether a school exists
func (r *SchoolRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schools WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking school existence: %w", err)
	}
	return exists, nil
}

// Create creates a new school
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	query := `
		INSERT INTO schools (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, school.Name).Scan(&school.ID)
	if err != nil {
		return fmt.Errorf("error creating school: %w", err)
	}

	return nil
}

// Update renames an existing school
func (r *SchoolRepository) Update(ctx context.Context, school *models.School) error {
	query := `
		UPDATE schools
		SET name = $1
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, school.Name, school.ID)
	if err != nil {
		return fmt.Errorf("error updating school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotInScope
	}

	return nil
}

// Delete deletes a school by ID. Dependents are not cascaded here; whether
// they should be is a pending product decision.
func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM schools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotInScope
	}

	return nil
}
