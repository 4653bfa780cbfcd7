package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/pkg/apperrors"
	"github.com/lucasmt/monitoria/internal/pkg/dberrors"
)

const studentNumberSchoolConstraint = "students_number_school_key"

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// List retrieves students joined with their school name, ordered by school
// name then student name. A non-nil scope limits rows to that school;
// filters are optional.
func (r *StudentRepository) List(ctx context.Context, scope *int64, filter dto.StudentFilter) ([]*models.Student, error) {
	query := `
		SELECT st.id, st.name, st.number, st.class_label, st.year, st.school_id, s.name
		FROM students st
		JOIN schools s ON st.school_id = s.id
		WHERE 1=1
	`
	args := []any{}

	if scope != nil {
		args = append(args, *scope)
		query += fmt.Sprintf(" AND st.school_id = $%d", len(args))
	}
	if filter.ClassLabel != "" {
		args = append(args, filter.ClassLabel)
		query += fmt.Sprintf(" AND st.class_label = $%d", len(args))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		query += fmt.Sprintf(" AND st.year = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(
			" AND (st.name ILIKE $%d OR st.number ILIKE $%d OR st.class_label ILIKE $%d OR s.name ILIKE $%d)",
			n, n, n, n)
	}

	query += " ORDER BY s.name, st.name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Number,
			&student.ClassLabel,
			&student.Year,
			&student.SchoolID,
			&student.SchoolName,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID within the given scope. A student that
// exists in another school resolves to the same error as one that does not
// exist at all.
func (r *StudentRepository) GetByID(ctx context.Context, id int64, scope *int64) (*models.Student, error) {
	query := `
		SELECT id, name, number, class_label, year, school_id
		FROM students
		WHERE id = $1
	`
	args := []any{id}
	if scope != nil {
		query += ` AND school_id = $2`
		args = append(args, *scope)
	}

	var student models.Student
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&student.ID,
		&student.Name,
		&student.Number,
		&student.ClassLabel,
		&student.Year,
		&student.SchoolID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotInScope
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Create enrolls a student. The (number, school) pre-check and the insert
// run in one transaction; the schema constraint backstops the concurrent
// create race.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE number = $1 AND school_id = $2)`,
		student.Number, student.SchoolID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking student number uniqueness: %w", err)
	}
	if exists {
		return apperrors.ErrStudentNumberExists
	}

	query := `
		INSERT INTO students (name, number, class_label, year, school_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		student.Name, student.Number, student.ClassLabel, student.Year, student.SchoolID,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, studentNumberSchoolConstraint) {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return tx.Commit(ctx)
}

// Update updates a student's mutable fields. The school affiliation is
// never changed here. The uniqueness check excludes the row itself so a
// no-op save never conflicts.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE number = $1 AND school_id = $2 AND id != $3)`,
		student.Number, student.SchoolID, student.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking student number uniqueness: %w", err)
	}
	if exists {
		return apperrors.ErrStudentNumberExists
	}

	query := `
		UPDATE students
		SET name = $1, number = $2, class_label = $3, year = $4
		WHERE id = $5
	`

	cmdTag, err := tx.Exec(ctx, query,
		student.Name, student.Number, student.ClassLabel, student.Year, student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, studentNumberSchoolConstraint) {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotInScope
	}

	return tx.Commit(ctx)
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotInScope
	}

	return nil
}
