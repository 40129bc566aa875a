package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"surveytool/internal/dto"
	"surveytool/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
	optionService   service.OptionService
}

func NewQuestionController(questionService service.QuestionService, optionService service.OptionService) *QuestionController {
	return &QuestionController{questionService: questionService, optionService: optionService}
}

// AddQuestion godoc
// @Summary (Admin) Add a question to a survey
// @Description Creates a question (single_choice, multiple_choice, or free_text). Supports conditional visibility via parent question and trigger options.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param question_data body dto.QuestionCreateDTO true "Question definition"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/surveys/{survey_id}/questions [post]
func (c *QuestionController) AddQuestion(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin AddQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	questionResp, err := c.questionService.AddQuestion(surveyID, req)
	if err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("Admin AddQuestion: service error")
		respondError(ctx, err, "Failed to add question")
		return
	}
	ctx.JSON(http.StatusCreated, questionResp)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Description Updates text, type, parent question and trigger options. The parent must belong to the same survey and must not close a cycle in the parent chain.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question_data body dto.QuestionUpdateDTO true "Updated question definition"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{question_id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.questionService.UpdateQuestion(questionID, req); err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Admin UpdateQuestion: service error")
		respondError(ctx, err, "Failed to update question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Description Deletes the question. If it has child questions, pass ?cascade=true to delete them recursively.
// @Tags Admin - Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Param cascade query bool false "Delete child questions recursively"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	cascade := ctx.Query("cascade") == "true"

	if err := c.questionService.DeleteQuestion(questionID, cascade); err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Admin DeleteQuestion: service error")
		respondError(ctx, err, "Failed to delete question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddOption godoc
// @Summary (Admin) Add an answer option to a question
// @Description Creates an answer option with a weight used for scoring. Weight may be zero or negative.
// @Tags Admin - Options
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param option_data body dto.OptionCreateDTO true "Option text and weight"
// @Success 201 {object} dto.OptionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/questions/{question_id}/options [post]
func (c *QuestionController) AddOption(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.OptionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	optionResp, err := c.optionService.AddOption(questionID, req)
	if err != nil {
		log.Warn().Err(err).Uint("questionID", questionID).Msg("Admin AddOption: service error")
		respondError(ctx, err, "Failed to add option")
		return
	}
	ctx.JSON(http.StatusCreated, optionResp)
}

// UpdateOption godoc
// @Summary (Admin) Update an answer option
// @Tags Admin - Options
// @Accept json
// @Produce json
// @Param option_id path int true "Option ID"
// @Param option_data body dto.OptionUpdateDTO true "New text and weight"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/options/{option_id} [put]
func (c *QuestionController) UpdateOption(ctx *gin.Context) {
	optionID, ok := parseIDParam(ctx, "option_id")
	if !ok {
		return
	}
	var req dto.OptionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.optionService.UpdateOption(optionID, req); err != nil {
		log.Warn().Err(err).Uint("optionID", optionID).Msg("Admin UpdateOption: service error")
		respondError(ctx, err, "Failed to update option")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteOption godoc
// @Summary (Admin) Delete an answer option
// @Tags Admin - Options
// @Produce json
// @Param option_id path int true "Option ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/options/{option_id} [delete]
func (c *QuestionController) DeleteOption(ctx *gin.Context) {
	optionID, ok := parseIDParam(ctx, "option_id")
	if !ok {
		return
	}
	if err := c.optionService.DeleteOption(optionID); err != nil {
		log.Warn().Err(err).Uint("optionID", optionID).Msg("Admin DeleteOption: service error")
		respondError(ctx, err, "Failed to delete option")
		return
	}
	ctx.Status(http.StatusNoContent)
}
