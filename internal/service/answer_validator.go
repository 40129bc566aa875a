package service

import (
	"surveytool/internal/dto"
	"surveytool/internal/model"
)

// normalizedAnswer is the validated form of one submitted item: selected
// option ids for choice questions, free text for free-text questions, never
// both. weight is the item's score contribution (always 0 for free text).
type normalizedAnswer struct {
	questionID        uint
	selectedOptionIDs []uint
	freeText          *string
	weight            int
}

// validateAnswer checks one submitted item against its question's type rules
// and returns the normalized answer, or a ValidationError describing the
// rejection.
func validateAnswer(q *model.Question, item dto.AnswerItemDTO) (*normalizedAnswer, error) {
	switch q.Type {
	case model.QuestionTypeFreeText:
		if len(item.SelectedOptionIDs) > 0 {
			return nil, model.NewValidationError("question %d is free text; options are not allowed", q.ID)
		}
		return &normalizedAnswer{questionID: q.ID, freeText: item.FreeText}, nil

	case model.QuestionTypeSingleChoice:
		if len(item.SelectedOptionIDs) != 1 {
			return nil, model.NewValidationError("question %d requires exactly one option", q.ID)
		}
		opt := q.OptionByID(item.SelectedOptionIDs[0])
		if opt == nil {
			return nil, model.NewValidationError("invalid option for question %d", q.ID)
		}
		return &normalizedAnswer{
			questionID:        q.ID,
			selectedOptionIDs: []uint{opt.ID},
			weight:            opt.Weight,
		}, nil

	case model.QuestionTypeMultipleChoice:
		if len(item.SelectedOptionIDs) == 0 {
			return nil, model.NewValidationError("question %d requires at least one option", q.ID)
		}
		seen := make(map[uint]bool, len(item.SelectedOptionIDs))
		for _, id := range item.SelectedOptionIDs {
			if seen[id] {
				return nil, model.NewValidationError("question %d has duplicate option id %d", q.ID, id)
			}
			seen[id] = true
		}
		weight := 0
		ids := make([]uint, 0, len(item.SelectedOptionIDs))
		for _, id := range item.SelectedOptionIDs {
			opt := q.OptionByID(id)
			if opt == nil {
				return nil, model.NewValidationError("one or more selected options are invalid for question %d", q.ID)
			}
			ids = append(ids, opt.ID)
			weight += opt.Weight
		}
		return &normalizedAnswer{
			questionID:        q.ID,
			selectedOptionIDs: ids,
			weight:            weight,
		}, nil

	default:
		return nil, model.NewValidationError("unsupported question type for question %d", q.ID)
	}
}
