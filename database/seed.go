package database

import (
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveytool/internal/model"
)

func strPtr(s string) *string { return &s }

// SeedDemoData inserts two demo surveys with sample responses. It is a no-op
// when any survey already exists.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Survey{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Survey 1: customer satisfaction, with a conditional question that only
	// shows when the respondent is not satisfied.
	survey1 := model.Survey{
		Title:       "Customer Satisfaction Survey",
		Description: "A demo survey for testing the API",
	}
	if err := db.Create(&survey1).Error; err != nil {
		return err
	}

	q1 := model.Question{
		SurveyID: survey1.ID,
		Text:     "How satisfied are you with our service?",
		Type:     model.QuestionTypeSingleChoice,
		Options: []model.AnswerOption{
			{Text: "Very satisfied", Weight: 5},
			{Text: "Somewhat satisfied", Weight: 3},
			{Text: "Not satisfied", Weight: 1},
		},
	}
	if err := db.Create(&q1).Error; err != nil {
		return err
	}

	q2 := model.Question{
		SurveyID:         survey1.ID,
		Text:             "What areas need improvement? (Choose all that apply)",
		Type:             model.QuestionTypeMultipleChoice,
		ParentQuestionID: &q1.ID,
		TriggerOptionIDs: pq.Int64Array{int64(q1.Options[2].ID)},
		Options: []model.AnswerOption{
			{Text: "Product quality", Weight: 2},
			{Text: "Customer support", Weight: 2},
			{Text: "Delivery time", Weight: 1},
		},
	}
	if err := db.Create(&q2).Error; err != nil {
		return err
	}

	q3 := model.Question{
		SurveyID: survey1.ID,
		Text:     "Any additional comments?",
		Type:     model.QuestionTypeFreeText,
	}
	if err := db.Create(&q3).Error; err != nil {
		return err
	}

	resp1 := model.SurveyResponse{
		SurveyID:  survey1.ID,
		CreatedAt: time.Now().UTC(),
		Score:     q1.Options[0].Weight,
		Items: []model.ResponseItem{
			{QuestionID: q1.ID, SelectedOptionIDs: pq.Int64Array{int64(q1.Options[0].ID)}},
			{QuestionID: q3.ID, FreeText: strPtr("Great service!")},
		},
	}
	if err := db.Create(&resp1).Error; err != nil {
		return err
	}

	resp2 := model.SurveyResponse{
		SurveyID:  survey1.ID,
		CreatedAt: time.Now().UTC().Add(time.Minute),
		Score:     q1.Options[2].Weight + q2.Options[0].Weight + q2.Options[1].Weight,
		Items: []model.ResponseItem{
			{QuestionID: q1.ID, SelectedOptionIDs: pq.Int64Array{int64(q1.Options[2].ID)}},
			{QuestionID: q2.ID, SelectedOptionIDs: pq.Int64Array{int64(q2.Options[0].ID), int64(q2.Options[1].ID)}},
			{QuestionID: q3.ID, FreeText: strPtr("Improve product quality and support response times.")},
		},
	}
	if err := db.Create(&resp2).Error; err != nil {
		return err
	}

	// Survey 2: employee engagement, no conditional questions.
	survey2 := model.Survey{
		Title:       "Employee Engagement Survey",
		Description: "Collect feedback from employees on workplace engagement",
	}
	if err := db.Create(&survey2).Error; err != nil {
		return err
	}

	s2q1 := model.Question{
		SurveyID: survey2.ID,
		Text:     "How would you rate your overall job satisfaction?",
		Type:     model.QuestionTypeSingleChoice,
		Options: []model.AnswerOption{
			{Text: "Highly satisfied", Weight: 5},
			{Text: "Satisfied", Weight: 3},
			{Text: "Dissatisfied", Weight: 1},
		},
	}
	if err := db.Create(&s2q1).Error; err != nil {
		return err
	}

	s2q2 := model.Question{
		SurveyID: survey2.ID,
		Text:     "What improvements would you like to see?",
		Type:     model.QuestionTypeFreeText,
	}
	if err := db.Create(&s2q2).Error; err != nil {
		return err
	}

	s2resp1 := model.SurveyResponse{
		SurveyID:  survey2.ID,
		CreatedAt: time.Now().UTC().Add(2 * time.Minute),
		Score:     s2q1.Options[1].Weight,
		Items: []model.ResponseItem{
			{QuestionID: s2q1.ID, SelectedOptionIDs: pq.Int64Array{int64(s2q1.Options[1].ID)}},
			{QuestionID: s2q2.ID, FreeText: strPtr("Better work-life balance and more team events.")},
		},
	}
	if err := db.Create(&s2resp1).Error; err != nil {
		return err
	}

	log.Info().Msg("Demo data seeded")
	return nil
}
