package models

import "time"

// Attempt records one student's single pass through the exam. The unique
// index on StudentID is what enforces one attempt per student: two
// concurrent starts cannot both insert.
type Attempt struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	StudentID  uint       `gorm:"not null;uniqueIndex" json:"student_id"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Score      *int       `json:"score,omitempty"`
}
