package service

import (
	"strings"
	"testing"

	"surveytool/internal/dto"
	"surveytool/internal/model"
)

func TestValidateAnswer(t *testing.T) {
	freeText := &model.Question{ID: 1, Type: model.QuestionTypeFreeText}
	single := &model.Question{ID: 2, Type: model.QuestionTypeSingleChoice, Options: []model.AnswerOption{
		{ID: 21, QuestionID: 2, Weight: 5},
		{ID: 22, QuestionID: 2, Weight: 3},
	}}
	multi := &model.Question{ID: 3, Type: model.QuestionTypeMultipleChoice, Options: []model.AnswerOption{
		{ID: 31, QuestionID: 3, Weight: 2},
		{ID: 32, QuestionID: 3, Weight: 2},
		{ID: 33, QuestionID: 3, Weight: -1},
	}}

	cases := []struct {
		name       string
		question   *model.Question
		item       dto.AnswerItemDTO
		wantErr    string
		wantWeight int
	}{
		{
			name:       "free text carries content and scores zero",
			question:   freeText,
			item:       dto.AnswerItemDTO{QuestionID: 1, FreeText: strp("hello")},
			wantWeight: 0,
		},
		{
			name:       "free text without content is accepted",
			question:   freeText,
			item:       dto.AnswerItemDTO{QuestionID: 1},
			wantWeight: 0,
		},
		{
			name:     "free text rejects options",
			question: freeText,
			item:     dto.AnswerItemDTO{QuestionID: 1, SelectedOptionIDs: []uint{21}},
			wantErr:  "options are not allowed",
		},
		{
			name:       "single choice with one owned option",
			question:   single,
			item:       dto.AnswerItemDTO{QuestionID: 2, SelectedOptionIDs: []uint{21}},
			wantWeight: 5,
		},
		{
			name:     "single choice with zero options",
			question: single,
			item:     dto.AnswerItemDTO{QuestionID: 2},
			wantErr:  "exactly one",
		},
		{
			name:     "single choice with two options",
			question: single,
			item:     dto.AnswerItemDTO{QuestionID: 2, SelectedOptionIDs: []uint{21, 22}},
			wantErr:  "exactly one",
		},
		{
			name:     "single choice with foreign option",
			question: single,
			item:     dto.AnswerItemDTO{QuestionID: 2, SelectedOptionIDs: []uint{31}},
			wantErr:  "invalid option",
		},
		{
			name:       "multiple choice sums weights",
			question:   multi,
			item:       dto.AnswerItemDTO{QuestionID: 3, SelectedOptionIDs: []uint{31, 32, 33}},
			wantWeight: 3,
		},
		{
			name:     "multiple choice requires at least one option",
			question: multi,
			item:     dto.AnswerItemDTO{QuestionID: 3},
			wantErr:  "at least one",
		},
		{
			name:     "multiple choice rejects duplicates even when the id is valid",
			question: multi,
			item:     dto.AnswerItemDTO{QuestionID: 3, SelectedOptionIDs: []uint{31, 31}},
			wantErr:  "duplicate option",
		},
		{
			name:     "multiple choice rejects foreign option",
			question: multi,
			item:     dto.AnswerItemDTO{QuestionID: 3, SelectedOptionIDs: []uint{31, 21}},
			wantErr:  "invalid",
		},
		{
			name:     "unsupported question type",
			question: &model.Question{ID: 4, Type: "matrix"},
			item:     dto.AnswerItemDTO{QuestionID: 4},
			wantErr:  "unsupported question type",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := validateAnswer(c.question, c.item)
			if c.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got none", c.wantErr)
				}
				if !model.IsValidationError(err) {
					t.Errorf("error is not a ValidationError: %v", err)
				}
				if !strings.Contains(err.Error(), c.wantErr) {
					t.Errorf("error = %q, want it to contain %q", err.Error(), c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got.weight != c.wantWeight {
				t.Errorf("weight = %d, want %d", got.weight, c.wantWeight)
			}
			if len(got.selectedOptionIDs) > 0 && got.freeText != nil {
				t.Error("normalized answer has both options and free text")
			}
		})
	}
}
