package models

import "time"

type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:200;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:150" json:"name"`
	Phone     string    `gorm:"size:20" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
