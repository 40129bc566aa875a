package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"surveytool/internal/dto"
	"surveytool/internal/model"
	"surveytool/internal/service"
)

type SurveyController struct {
	surveyService   service.SurveyService
	responseService service.ResponseService
	scoreService    service.ScoreService
}

func NewSurveyController(
	surveyService service.SurveyService,
	responseService service.ResponseService,
	scoreService service.ScoreService,
) *SurveyController {
	return &SurveyController{
		surveyService:   surveyService,
		responseService: responseService,
		scoreService:    scoreService,
	}
}

func respondError(ctx *gin.Context, err error, message string) {
	switch {
	case model.IsValidationError(err):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
	}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// GetAllSurveys godoc
// @Summary List all surveys
// @Tags Surveys
// @Produce json
// @Success 200 {array} dto.SurveySummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys [get]
func (c *SurveyController) GetAllSurveys(ctx *gin.Context) {
	surveys, err := c.surveyService.GetAllSurveys()
	if err != nil {
		log.Error().Err(err).Msg("GetAllSurveys: service error")
		respondError(ctx, err, "Failed to retrieve surveys")
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// GetSurveyDetails godoc
// @Summary Get a survey with its question/option graph
// @Tags Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /surveys/{survey_id} [get]
func (c *SurveyController) GetSurveyDetails(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}
	survey, err := c.surveyService.GetSurvey(surveyID)
	if err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("GetSurveyDetails: service error")
		respondError(ctx, err, "Failed to retrieve survey")
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// SubmitResponse godoc
// @Summary Submit a response to a survey
// @Description Validates visibility and answer types, computes the score, persists the response and returns its id and score. Any validation failure aborts the whole submission.
// @Tags Responses
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param submission body dto.SubmitResponseDTO true "Answered items"
// @Success 200 {object} dto.SubmitResponseResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys/{survey_id}/responses [post]
func (c *SurveyController) SubmitResponse(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}
	var req dto.SubmitResponseDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitResponse: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("surveyID", surveyID).Int("itemCount", len(req.Items)).Msg("Received response submission")

	result, err := c.responseService.SubmitResponse(surveyID, req)
	if err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("SubmitResponse: service error")
		respondError(ctx, err, "Failed to submit response")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetResponse godoc
// @Summary Get a stored response by id
// @Description Returns the response with its normalized items and the score computed at submission time. No visibility filtering is applied at read time.
// @Tags Responses
// @Produce json
// @Param response_id path int true "Response ID"
// @Success 200 {object} dto.ResponseDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /responses/{response_id} [get]
func (c *SurveyController) GetResponse(ctx *gin.Context) {
	responseID, ok := parseIDParam(ctx, "response_id")
	if !ok {
		return
	}
	response, err := c.responseService.GetResponse(responseID)
	if err != nil {
		log.Warn().Err(err).Uint("responseID", responseID).Msg("GetResponse: service error")
		respondError(ctx, err, "Failed to retrieve response")
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// ListResponses godoc
// @Summary List responses for a survey
// @Description Returns response summaries ordered by creation time, newest first.
// @Tags Responses
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {array} dto.ResponseSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys/{survey_id}/responses [get]
func (c *SurveyController) ListResponses(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}
	responses, err := c.responseService.ListResponses(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("ListResponses: service error")
		respondError(ctx, err, "Failed to retrieve responses")
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetScoreSummary godoc
// @Summary Get the aggregate score of a survey
// @Description Returns total, count and average of the stored response scores. A survey with no responses yields zeros.
// @Tags Responses
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyScoreSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /surveys/{survey_id}/score [get]
func (c *SurveyController) GetScoreSummary(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}
	summary, err := c.scoreService.GetSurveyScoreSummary(surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("GetScoreSummary: service error")
		respondError(ctx, err, "Failed to compute score summary")
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
