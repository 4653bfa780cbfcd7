package dto

// CreateObservationRequest carries the fields for recording a behavioral
// observation. Discipline is free text matched against subject names.
type CreateObservationRequest struct {
	StudentID   int64   `json:"studentId" binding:"required" example:"5"`
	Date        string  `json:"date" binding:"required" example:"2024-05-10"`
	Discipline  string  `json:"discipline" binding:"required" example:"Mathematics"`
	Kind        string  `json:"kind" binding:"required" example:"positive" enums:"positive,negative"`
	Description string  `json:"description" binding:"required" example:"Helped a classmate during the exercise"`
	Consequence *string `json:"consequence,omitempty" example:"Commendation sent home"`
}

// UpdateObservationRequest carries the mutable observation fields
type UpdateObservationRequest struct {
	Date        string  `json:"date" binding:"required" example:"2024-05-10"`
	Discipline  string  `json:"discipline" binding:"required" example:"Mathematics"`
	Kind        string  `json:"kind" binding:"required" example:"negative" enums:"positive,negative"`
	Description string  `json:"description" binding:"required"`
	Consequence *string `json:"consequence,omitempty"`
}
