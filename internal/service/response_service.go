package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveytool/internal/dto"
	"surveytool/internal/model"
	"surveytool/internal/repository"
)

// ResponseService validates submissions against the survey's question graph,
// computes the score and persists the resulting response. Reads of stored
// responses apply no visibility filtering; visibility rules hold at submission
// time only.
type ResponseService interface {
	SubmitResponse(surveyID uint, req dto.SubmitResponseDTO) (*dto.SubmitResponseResultDTO, error)
	GetResponse(responseID uint) (*dto.ResponseDetailDTO, error)
	ListResponses(surveyID uint) ([]dto.ResponseSummaryDTO, error)
}

type responseService struct {
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
}

func NewResponseService(surveyRepo repository.SurveyRepository, responseRepo repository.ResponseRepository) ResponseService {
	return &responseService{surveyRepo: surveyRepo, responseRepo: responseRepo}
}

// SubmitResponse runs the whole submission: duplicate check, per-item question
// lookup, visibility resolution and answer validation in submission order,
// then a single persist of the normalized response. Any failure aborts the
// submission; nothing partial is ever written.
func (s *responseService) SubmitResponse(surveyID uint, req dto.SubmitResponseDTO) (*dto.SubmitResponseResultDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithGraph(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NewValidationError("survey %d not found", surveyID)
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("SubmitResponse: failed to load survey graph")
		return nil, fmt.Errorf("error loading survey %d: %w", surveyID, err)
	}

	questionsByID := make(map[uint]*model.Question, len(survey.Questions))
	for i := range survey.Questions {
		questionsByID[survey.Questions[i].ID] = &survey.Questions[i]
	}

	answersByQ := make(map[uint]dto.AnswerItemDTO, len(req.Items))
	for _, item := range req.Items {
		if _, dup := answersByQ[item.QuestionID]; dup {
			return nil, model.NewValidationError("duplicate question %d in submission", item.QuestionID)
		}
		answersByQ[item.QuestionID] = item
	}

	resolver := newVisibilityResolver(questionsByID, answersByQ)

	score := 0
	items := make([]model.ResponseItem, 0, len(req.Items))
	for _, item := range req.Items {
		q, ok := questionsByID[item.QuestionID]
		if !ok {
			return nil, model.NewValidationError("question %d does not belong to survey %d", item.QuestionID, surveyID)
		}
		if !resolver.IsVisible(q) {
			return nil, model.NewValidationError("question %d is not visible under current answers", q.ID)
		}

		normalized, err := validateAnswer(q, item)
		if err != nil {
			return nil, err
		}
		items = append(items, model.ResponseItem{
			QuestionID:        normalized.questionID,
			SelectedOptionIDs: toInt64Array(normalized.selectedOptionIDs),
			FreeText:          normalized.freeText,
		})
		score += normalized.weight
	}

	response := model.SurveyResponse{
		SurveyID:  surveyID,
		CreatedAt: time.Now().UTC(),
		Score:     score,
		Items:     items,
	}
	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("SubmitResponse: failed to persist response")
		return nil, fmt.Errorf("error persisting response for survey %d: %w", surveyID, err)
	}

	log.Info().Uint("surveyID", surveyID).Uint("responseID", response.ID).Int("score", score).Msg("Response submitted")
	return &dto.SubmitResponseResultDTO{ResponseID: response.ID, Score: score}, nil
}

func (s *responseService) GetResponse(responseID uint) (*dto.ResponseDetailDTO, error) {
	response, err := s.responseRepo.FindByIDWithItems(responseID)
	if err != nil {
		log.Warn().Err(err).Uint("responseID", responseID).Msg("GetResponse: failed to find response")
		return nil, fmt.Errorf("response not found with ID %d: %w", responseID, err)
	}

	var resp dto.ResponseDetailDTO
	if err := copier.Copy(&resp, response); err != nil {
		log.Error().Err(err).Msg("GetResponse: failed to copy response model to DTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.Items = make([]dto.ResponseItemDTO, len(response.Items))
	for i, item := range response.Items {
		resp.Items[i] = dto.ResponseItemDTO{
			QuestionID:        item.QuestionID,
			SelectedOptionIDs: toUintSlice(item.SelectedOptionIDs),
			FreeText:          item.FreeText,
		}
	}
	return &resp, nil
}

// ListResponses returns summaries of all responses for a survey, newest first.
func (s *responseService) ListResponses(surveyID uint) ([]dto.ResponseSummaryDTO, error) {
	responses, err := s.responseRepo.FindAllBySurveyID(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("ListResponses: repository error")
		return nil, fmt.Errorf("error fetching responses for survey %d: %w", surveyID, err)
	}

	dtos := make([]dto.ResponseSummaryDTO, len(responses))
	for i, r := range responses {
		dtos[i] = dto.ResponseSummaryDTO{
			ID:        r.ID,
			SurveyID:  r.SurveyID,
			CreatedAt: r.CreatedAt,
			Score:     r.Score,
		}
	}
	return dtos, nil
}

func toInt64Array(ids []uint) pq.Int64Array {
	if len(ids) == 0 {
		return nil
	}
	out := make(pq.Int64Array, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}

func toUintSlice(ids pq.Int64Array) []uint {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint, len(ids))
	for i, id := range ids {
		out[i] = uint(id)
	}
	return out
}
