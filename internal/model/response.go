package model

import (
	"time"

	"github.com/lib/pq"
)

// SurveyResponse is created once per successful submission. Its score is fixed
// at creation time and never recomputed.
type SurveyResponse struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SurveyID  uint           `json:"survey_id" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	Score     int            `json:"score" gorm:"not null"`
	Items     []ResponseItem `json:"items,omitempty" gorm:"foreignKey:SurveyResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// ResponseItem holds either the selected option ids or free text for one
// answered question, by question type. Never both.
type ResponseItem struct {
	ID                uint          `gorm:"primarykey" json:"id"`
	SurveyResponseID  uint          `json:"survey_response_id" gorm:"not null;index"`
	QuestionID        uint          `json:"question_id" gorm:"not null;index"`
	SelectedOptionIDs pq.Int64Array `json:"selected_option_ids,omitempty" gorm:"type:integer[]"`
	FreeText          *string       `json:"free_text,omitempty" gorm:"type:text"`
}
