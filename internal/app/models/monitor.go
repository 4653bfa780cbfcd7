package models

// Monitor defines a staff account based on the 'monitors' table. SchoolID
// is nil only for administrator accounts.
type Monitor struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	NationalID   string `json:"nationalId" db:"national_id"`
	Role         Role   `json:"role" db:"role"`
	SchoolID     *int64 `json:"schoolId" db:"school_id"`
	PasswordHash string `json:"-" db:"password_hash"`

	// Populated by list queries
	SchoolName *string `json:"schoolName,omitempty"`
}
