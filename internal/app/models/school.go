package models

// School defines the school model based on the 'schools' table
type School struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
