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

type OptionService interface {
	AddOption(questionID uint, req dto.OptionCreateDTO) (*dto.OptionResponseDTO, error)
	UpdateOption(optionID uint, req dto.OptionUpdateDTO) error
	DeleteOption(optionID uint) error
}

type optionService struct {
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
}

func NewOptionService(questionRepo repository.QuestionRepository, optionRepo repository.OptionRepository) OptionService {
	return &optionService{questionRepo: questionRepo, optionRepo: optionRepo}
}

func (s *optionService) AddOption(questionID uint, req dto.OptionCreateDTO) (*dto.OptionResponseDTO, error) {
	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewValidationError("question %d not found", questionID)
		}
		return nil, fmt.Errorf("error loading question %d: %w", questionID, err)
	}

	option := model.AnswerOption{
		QuestionID: questionID,
		Text:       req.Text,
		Weight:     req.Weight,
	}
	if err := s.optionRepo.Create(&option); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("AddOption: failed to create option")
		return nil, fmt.Errorf("database error creating option: %w", err)
	}
	return &dto.OptionResponseDTO{
		ID:         option.ID,
		QuestionID: option.QuestionID,
		Text:       option.Text,
		Weight:     option.Weight,
	}, nil
}

func (s *optionService) UpdateOption(optionID uint, req dto.OptionUpdateDTO) error {
	option, err := s.optionRepo.FindByID(optionID)
	if err != nil {
		return fmt.Errorf("option not found with ID %d: %w", optionID, err)
	}
	option.Text = req.Text
	option.Weight = req.Weight
	if err := s.optionRepo.Update(option); err != nil {
		log.Error().Err(err).Uint("optionID", optionID).Msg("UpdateOption: failed to update option")
		return fmt.Errorf("database error updating option %d: %w", optionID, err)
	}
	return nil
}

func (s *optionService) DeleteOption(optionID uint) error {
	if _, err := s.optionRepo.FindByID(optionID); err != nil {
		return fmt.Errorf("option not found with ID %d: %w", optionID, err)
	}
	if err := s.optionRepo.Delete(optionID); err != nil {
		log.Error().Err(err).Uint("optionID", optionID).Msg("DeleteOption: failed to delete option")
		return fmt.Errorf("database error deleting option %d: %w", optionID, err)
	}
	return nil
}
