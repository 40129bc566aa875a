package dto

// QuestionCreateDTO adds a question to a survey. ParentQuestionID and
// TriggerOptionIDs together define conditional visibility.
type QuestionCreateDTO struct {
	Text             string `json:"text" binding:"required"`
	Type             string `json:"type" binding:"required,oneof=single_choice multiple_choice free_text"`
	ParentQuestionID *uint  `json:"parent_question_id"`
	TriggerOptionIDs []uint `json:"trigger_option_ids"`
}

// QuestionUpdateDTO updates a question's text, type and visibility rule.
type QuestionUpdateDTO struct {
	Text             string `json:"text" binding:"required"`
	Type             string `json:"type" binding:"required,oneof=single_choice multiple_choice free_text"`
	ParentQuestionID *uint  `json:"parent_question_id"`
	TriggerOptionIDs []uint `json:"trigger_option_ids"`
}

// QuestionResponseDTO is used for displaying question details.
type QuestionResponseDTO struct {
	ID               uint                `json:"id"`
	SurveyID         uint                `json:"survey_id"`
	Text             string              `json:"text"`
	Type             string              `json:"type"`
	ParentQuestionID *uint               `json:"parent_question_id,omitempty"`
	TriggerOptionIDs []uint              `json:"trigger_option_ids,omitempty"`
	Options          []OptionResponseDTO `json:"options,omitempty"`
}

// OptionCreateDTO adds an answer option to a question. Weight may be zero or
// negative.
type OptionCreateDTO struct {
	Text   string `json:"text" binding:"required"`
	Weight int    `json:"weight"`
}

// OptionUpdateDTO updates an option's text and weight.
type OptionUpdateDTO struct {
	Text   string `json:"text" binding:"required"`
	Weight int    `json:"weight"`
}

// OptionResponseDTO is used for displaying option details.
type OptionResponseDTO struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	Text       string `json:"text"`
	Weight     int    `json:"weight"`
}
