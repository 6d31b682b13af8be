package models

import "time"

type Answer struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AttemptID  uint      `gorm:"not null;index" json:"attempt_id"`
	QuestionID uint      `gorm:"not null" json:"question_id"`
	Selected   string    `gorm:"size:5" json:"selected"`
	AnsweredAt time.Time `json:"answered_at"`
}
