package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveytool/internal/dto"
	"surveytool/internal/model"
	"surveytool/internal/repository"
)

type QuestionService interface {
	AddQuestion(surveyID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(questionID uint, req dto.QuestionUpdateDTO) error
	DeleteQuestion(questionID uint, cascade bool) error
}

type questionService struct {
	surveyRepo   repository.SurveyRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionService(surveyRepo repository.SurveyRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{surveyRepo: surveyRepo, questionRepo: questionRepo}
}

func (s *questionService) AddQuestion(surveyID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.surveyRepo.FindByID(surveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewValidationError("survey %d not found", surveyID)
		}
		return nil, fmt.Errorf("error loading survey %d: %w", surveyID, err)
	}

	question := model.Question{
		SurveyID:         surveyID,
		Text:             req.Text,
		Type:             req.Type,
		TriggerOptionIDs: toInt64Array(req.TriggerOptionIDs),
	}
	if req.ParentQuestionID != nil {
		if err := s.validateParentChain(surveyID, 0, *req.ParentQuestionID); err != nil {
			return nil, err
		}
		question.ParentQuestionID = req.ParentQuestionID
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("AddQuestion: failed to create question")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}
	resp := questionToDTO(&question)
	return &resp, nil
}

func (s *questionService) UpdateQuestion(questionID uint, req dto.QuestionUpdateDTO) error {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}

	if req.ParentQuestionID != nil {
		if err := s.validateParentChain(question.SurveyID, questionID, *req.ParentQuestionID); err != nil {
			return err
		}
	}

	question.Text = req.Text
	question.Type = req.Type
	question.ParentQuestionID = req.ParentQuestionID
	question.TriggerOptionIDs = toInt64Array(req.TriggerOptionIDs)

	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("UpdateQuestion: failed to update question")
		return fmt.Errorf("database error updating question %d: %w", questionID, err)
	}
	return nil
}

// validateParentChain enforces the visibility-rule invariants: the parent must
// exist, belong to the same survey, and linking to it must not close a cycle
// in the parent chain (self-parenting included). Cycles are rejected here, at
// write time, so visibility evaluation never meets one.
func (s *questionService) validateParentChain(surveyID, questionID, parentID uint) error {
	if parentID == questionID {
		return model.NewValidationError("a question cannot be its own parent")
	}

	siblings, err := s.questionRepo.FindBySurveyID(surveyID)
	if err != nil {
		return fmt.Errorf("error loading questions for survey %d: %w", surveyID, err)
	}
	byID := make(map[uint]*model.Question, len(siblings))
	for i := range siblings {
		byID[siblings[i].ID] = &siblings[i]
	}

	parent, ok := byID[parentID]
	if !ok {
		return model.NewValidationError("parent question %d not found in survey %d", parentID, surveyID)
	}

	// Walk up from the proposed parent; reaching the question being updated
	// (or any node twice) means the link would close a cycle.
	seen := map[uint]bool{questionID: true}
	for cur := parent; cur != nil; {
		if seen[cur.ID] {
			return model.NewValidationError("parent chain of question %d would contain a cycle", questionID)
		}
		seen[cur.ID] = true
		if cur.ParentQuestionID == nil {
			break
		}
		cur = byID[*cur.ParentQuestionID]
	}
	return nil
}

func (s *questionService) DeleteQuestion(questionID uint, cascade bool) error {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		return fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}

	children, err := s.questionRepo.FindChildren(questionID)
	if err != nil {
		return fmt.Errorf("error loading child questions of %d: %w", questionID, err)
	}
	if len(children) > 0 && !cascade {
		return model.NewValidationError("question %d has child questions; delete with cascade=true or reparent them first", questionID)
	}
	if cascade {
		for _, child := range children {
			if err := s.DeleteQuestion(child.ID, true); err != nil {
				return err
			}
		}
	}

	if err := s.questionRepo.Delete(questionID); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("DeleteQuestion: failed to delete question")
		return fmt.Errorf("database error deleting question %d: %w", questionID, err)
	}
	return nil
}

func questionToDTO(q *model.Question) dto.QuestionResponseDTO {
	resp := dto.QuestionResponseDTO{
		ID:               q.ID,
		SurveyID:         q.SurveyID,
		Text:             q.Text,
		Type:             q.Type,
		ParentQuestionID: q.ParentQuestionID,
		TriggerOptionIDs: toUintSlice(q.TriggerOptionIDs),
	}
	for _, opt := range q.Options {
		resp.Options = append(resp.Options, dto.OptionResponseDTO{
			ID:         opt.ID,
			QuestionID: opt.QuestionID,
			Text:       opt.Text,
			Weight:     opt.Weight,
		})
	}
	return resp
}
