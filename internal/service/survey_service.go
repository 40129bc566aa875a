package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"surveytool/internal/dto"
	"surveytool/internal/model"
	"surveytool/internal/repository"
)

type SurveyService interface {
	CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	GetSurvey(surveyID uint) (*dto.SurveyResponseDTO, error)
	GetAllSurveys() ([]dto.SurveySummaryDTO, error)
	UpdateSurvey(surveyID uint, req dto.SurveyUpdateDTO) error
	DeleteSurvey(surveyID uint) error
}

type surveyService struct {
	surveyRepo repository.SurveyRepository
}

func NewSurveyService(surveyRepo repository.SurveyRepository) SurveyService {
	return &surveyService{surveyRepo: surveyRepo}
}

func (s *surveyService) CreateSurvey(req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	survey := model.Survey{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.surveyRepo.Create(&survey); err != nil {
		log.Error().Err(err).Msg("CreateSurvey: failed to create survey")
		return nil, fmt.Errorf("database error creating survey: %w", err)
	}
	resp := surveyToDTO(&survey)
	return &resp, nil
}

func (s *surveyService) GetSurvey(surveyID uint) (*dto.SurveyResponseDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithGraph(surveyID)
	if err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("GetSurvey: survey not found")
		return nil, fmt.Errorf("survey not found with ID %d: %w", surveyID, err)
	}
	resp := surveyToDTO(survey)
	return &resp, nil
}

func (s *surveyService) GetAllSurveys() ([]dto.SurveySummaryDTO, error) {
	surveysWithCount, err := s.surveyRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("GetAllSurveys: repository error")
		return nil, fmt.Errorf("error fetching surveys: %w", err)
	}

	var dtos []dto.SurveySummaryDTO
	for _, swc := range surveysWithCount {
		dtos = append(dtos, dto.SurveySummaryDTO{
			ID:            swc.Survey.ID,
			Title:         swc.Survey.Title,
			Description:   swc.Survey.Description,
			QuestionCount: swc.QuestionCount,
			CreatedAt:     swc.Survey.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *surveyService) UpdateSurvey(surveyID uint, req dto.SurveyUpdateDTO) error {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if err != nil {
		return fmt.Errorf("survey not found with ID %d: %w", surveyID, err)
	}
	survey.Title = req.Title
	survey.Description = req.Description
	if err := s.surveyRepo.Update(survey); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("UpdateSurvey: failed to update survey")
		return fmt.Errorf("database error updating survey %d: %w", surveyID, err)
	}
	return nil
}

func (s *surveyService) DeleteSurvey(surveyID uint) error {
	if _, err := s.surveyRepo.FindByID(surveyID); err != nil {
		return fmt.Errorf("survey not found with ID %d: %w", surveyID, err)
	}
	if err := s.surveyRepo.Delete(surveyID); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("DeleteSurvey: failed to delete survey")
		return fmt.Errorf("database error deleting survey %d: %w", surveyID, err)
	}
	return nil
}

func surveyToDTO(survey *model.Survey) dto.SurveyResponseDTO {
	resp := dto.SurveyResponseDTO{
		ID:          survey.ID,
		Title:       survey.Title,
		Description: survey.Description,
		CreatedAt:   survey.CreatedAt,
	}
	for i := range survey.Questions {
		resp.Questions = append(resp.Questions, questionToDTO(&survey.Questions[i]))
	}
	return resp
}
