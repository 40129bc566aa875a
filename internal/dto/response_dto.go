package dto

import "time"

// AnswerItemDTO is one answered question within a submission: selected option
// ids for choice questions, free text for free-text questions.
type AnswerItemDTO struct {
	QuestionID        uint    `json:"question_id" binding:"required"`
	SelectedOptionIDs []uint  `json:"selected_option_ids"`
	FreeText          *string `json:"free_text"`
}

// SubmitResponseDTO is the request DTO for submitting all answers for a survey.
type SubmitResponseDTO struct {
	Items []AnswerItemDTO `json:"items" binding:"required,dive"`
}

// SubmitResponseResultDTO is returned after a successful submission.
type SubmitResponseResultDTO struct {
	ResponseID uint `json:"response_id"`
	Score      int  `json:"score"`
}

// ResponseItemDTO is one normalized item of a stored response.
type ResponseItemDTO struct {
	QuestionID        uint    `json:"question_id"`
	SelectedOptionIDs []uint  `json:"selected_option_ids,omitempty"`
	FreeText          *string `json:"free_text,omitempty"`
}

// ResponseDetailDTO is for displaying a stored response with its items.
type ResponseDetailDTO struct {
	ID        uint              `json:"id"`
	SurveyID  uint              `json:"survey_id"`
	CreatedAt time.Time         `json:"created_at"`
	Score     int               `json:"score"`
	Items     []ResponseItemDTO `json:"items"`
}

// ResponseSummaryDTO is for listing the responses submitted to a survey.
type ResponseSummaryDTO struct {
	ID        uint      `json:"id"`
	SurveyID  uint      `json:"survey_id"`
	CreatedAt time.Time `json:"created_at"`
	Score     int       `json:"score"`
}

// CreatedResponse carries the id of a newly created resource.
type CreatedResponse struct {
	ID uint `json:"id"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
