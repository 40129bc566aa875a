package dto

import "time"

// SurveyCreateDTO is for creating a new survey. Questions are added separately.
type SurveyCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
}

// SurveyUpdateDTO updates a survey's title and description only.
type SurveyUpdateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
}

// SurveyResponseDTO is used for displaying full survey details, including the
// question/option graph.
type SurveyResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// SurveySummaryDTO is used for listing surveys.
type SurveySummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// SurveyScoreSummaryDTO aggregates the stored scores of all responses
// submitted to one survey.
type SurveyScoreSummaryDTO struct {
	SurveyID      uint    `json:"survey_id"`
	TotalScore    int     `json:"total_score"`
	ResponseCount int     `json:"response_count"`
	AverageScore  float64 `json:"average_score"`
}
