package models

// Role defines the monitor account role type
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMonitor Role = "monitor"
)

// Valid reports whether the role is one of the known tags.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMonitor
}

// ObservationKind is the polarity tag of a behavioral observation
type ObservationKind string

const (
	ObservationPositive ObservationKind = "positive"
	ObservationNegative ObservationKind = "negative"
)

// Valid reports whether the kind is one of the known tags.
func (k ObservationKind) Valid() bool {
	return k == ObservationPositive || k == ObservationNegative
}
