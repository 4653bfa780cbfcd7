package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository computes the dashboard counts
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{
		db: db,
	}
}

// CountStudents counts students, optionally limited to one school
func (r *StatsRepository) CountStudents(ctx context.Context, scope *int64) (int64, error) {
	return r.count(ctx, "students", scope)
}

// CountMonitors counts staff accounts, optionally limited to one school
func (r *StatsRepository) CountMonitors(ctx context.Context, scope *int64) (int64, error) {
	return r.count(ctx, "monitors", scope)
}

// CountSchools counts schools
func (r *StatsRepository) CountSchools(ctx context.Context) (int64, error) {
	return r.count(ctx, "schools", nil)
}

func (r *StatsRepository) count(ctx context.Context, table string, scope *int64) (int64, error) {
	// table is one of a fixed set of identifiers, never caller input
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	args := []any{}
	if scope != nil {
		query += " WHERE school_id = $1"
		args = append(args, *scope)
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}

	return total, nil
}
