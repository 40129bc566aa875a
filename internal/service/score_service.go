package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"surveytool/internal/dto"
	"surveytool/internal/model"
	"surveytool/internal/repository"
)

// ScoreService aggregates the stored scores of a survey's responses.
type ScoreService interface {
	AggregateScores(responses []model.SurveyResponse) (totalScore int, responseCount int, averageScore float64)
	GetSurveyScoreSummary(surveyID uint) (*dto.SurveyScoreSummaryDTO, error)
}

type scoreService struct {
	responseRepo repository.ResponseRepository
}

func NewScoreService(responseRepo repository.ResponseRepository) ScoreService {
	return &scoreService{responseRepo: responseRepo}
}

// AggregateScores sums the stored scores. Zero responses yields (0, 0, 0.0);
// this is a defined result, not an error.
func (s *scoreService) AggregateScores(responses []model.SurveyResponse) (int, int, float64) {
	count := len(responses)
	if count == 0 {
		return 0, 0, 0
	}
	total := 0
	for _, r := range responses {
		total += r.Score
	}
	return total, count, float64(total) / float64(count)
}

func (s *scoreService) GetSurveyScoreSummary(surveyID uint) (*dto.SurveyScoreSummaryDTO, error) {
	responses, err := s.responseRepo.FindAllBySurveyID(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("GetSurveyScoreSummary: repository error")
		return nil, fmt.Errorf("error fetching responses for survey %d: %w", surveyID, err)
	}

	total, count, average := s.AggregateScores(responses)
	return &dto.SurveyScoreSummaryDTO{
		SurveyID:      surveyID,
		TotalScore:    total,
		ResponseCount: count,
		AverageScore:  average,
	}, nil
}
