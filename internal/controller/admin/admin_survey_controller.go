package admin

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
	surveyService service.SurveyService
}

func NewSurveyController(surveyService service.SurveyService) *SurveyController {
	return &SurveyController{surveyService: surveyService}
}

// respondError maps service errors onto HTTP statuses: domain validation
// failures are client errors, missing records are 404, anything else is an
// infrastructure failure.
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

// CreateSurvey godoc
// @Summary (Admin) Create a new survey
// @Description Creates an empty survey. Questions and options are added through their own endpoints.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param survey_data body dto.SurveyCreateDTO true "Survey title and description"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateSurvey: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	surveyResp, err := c.surveyService.CreateSurvey(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateSurvey: service error")
		respondError(ctx, err, "Failed to create survey")
		return
	}
	ctx.JSON(http.StatusCreated, surveyResp)
}

// UpdateSurvey godoc
// @Summary (Admin) Update a survey's title and description
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param survey_data body dto.SurveyUpdateDTO true "New title and description"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{survey_id} [put]
func (c *SurveyController) UpdateSurvey(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}
	var req dto.SurveyUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.surveyService.UpdateSurvey(surveyID, req); err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("Admin UpdateSurvey: service error")
		respondError(ctx, err, "Failed to update survey")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteSurvey godoc
// @Summary (Admin) Delete a survey
// @Description Deletes the survey with its questions, options and responses.
// @Tags Admin - Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{survey_id} [delete]
func (c *SurveyController) DeleteSurvey(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}
	if err := c.surveyService.DeleteSurvey(surveyID); err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("Admin DeleteSurvey: service error")
		respondError(ctx, err, "Failed to delete survey")
		return
	}
	ctx.Status(http.StatusNoContent)
}
