package models

// Question is append-only: questions are never edited or removed once
// created, so OrderIndex values stay dense in authoring order.
type Question struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Text            string `gorm:"type:text" json:"text"`
	OptA            string `gorm:"size:300" json:"opt_a"`
	OptB            string `gorm:"size:300" json:"opt_b"`
	OptC            string `gorm:"size:300" json:"opt_c"`
	OptD            string `gorm:"size:300" json:"opt_d"`
	Correct         string `gorm:"size:5" json:"correct"`
	OrderIndex      int    `gorm:"not null;default:0" json:"order_index"`
	PerQuestionTime int    `gorm:"not null;default:60" json:"per_question_time"`
}
