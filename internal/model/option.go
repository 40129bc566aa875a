package model

import (
	"time"

	"gorm.io/gorm"
)

// AnswerOption carries the integer weight contributed to a response's score
// when the option is selected. Weight may be zero or negative.
type AnswerOption struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Text       string         `json:"text" gorm:"not null"`
	Weight     int            `json:"weight" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
