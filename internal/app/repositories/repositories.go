package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	School      *SchoolRepository
	Monitor     *MonitorRepository
	Student     *StudentRepository
	Subject     *SubjectRepository
	Grade       *GradeRepository
	Observation *ObservationRepository
	Stats       *StatsRepository
}

// NewRepositories creates repository instances sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		School:      NewSchoolRepository(db),
		Monitor:     NewMonitorRepository(db),
		Student:     NewStudentRepository(db),
		Subject:     NewSubjectRepository(db),
		Grade:       NewGradeRepository(db),
		Observation: NewObservationRepository(db),
		Stats:       NewStatsRepository(db),
	}
}
