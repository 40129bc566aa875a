package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Question types supported in surveys.
const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeFreeText       = "free_text"
)

type Question struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	SurveyID uint   `json:"survey_id" gorm:"not null;index"`
	Text     string `json:"text" gorm:"type:text;not null"`
	Type     string `json:"type" gorm:"not null"` // "single_choice", "multiple_choice", "free_text"

	// ParentQuestionID plus TriggerOptionIDs make this question conditionally
	// visible: it can only be answered when the parent was answered with at
	// least one of the trigger options.
	ParentQuestionID *uint         `json:"parent_question_id,omitempty" gorm:"index"`
	TriggerOptionIDs pq.Int64Array `json:"trigger_option_ids,omitempty" gorm:"type:integer[]"`

	Options   []AnswerOption `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// OptionByID returns the owned option with the given id, or nil.
func (q *Question) OptionByID(optionID uint) *AnswerOption {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i]
		}
	}
	return nil
}
