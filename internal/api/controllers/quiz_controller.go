package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dermia/internal/models/request_models"
	"dermia/internal/services"
	"dermia/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// StartQuiz godoc
// @Summary Start a new quiz session
// @Description Create a quiz session and return its id with the intro step
// @Tags Quiz
// @Produce json
// @Success 200 {object} response_models.StartResponse
// @Router /quiz/start [post]
func (q *QuizController) StartQuiz(c *gin.Context) {
	start, err := q.quizService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, start, "Quiz session created")
}

// BeginQuiz godoc
// @Summary Begin the questionnaire
// @Description Move the session from the intro screen to the first question
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.StepResponse
// @Router /quiz/{sessionId}/begin [post]
func (q *QuizController) BeginQuiz(c *gin.Context) {
	step, err := q.quizService.Begin(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, step, "Quiz started")
}

// AnswerQuestion godoc
// @Summary Record an answer for the current question
// @Tags Quiz
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.AnswerRequest true "Question id plus option id (single) or option ids (multi)"
// @Success 200 {object} response_models.StepResponse
// @Router /quiz/{sessionId}/answer [post]
func (q *QuizController) AnswerQuestion(c *gin.Context) {
	var req request_models.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.QuestionID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "A valid question_id is required")
		return
	}

	step, err := q.quizService.Answer(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, step, "Answer recorded")
}

// AdvanceQuiz godoc
// @Summary Advance to the next step
// @Description Requires the current question to have a non-empty answer
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.StepResponse
// @Router /quiz/{sessionId}/advance [post]
func (q *QuizController) AdvanceQuiz(c *gin.Context) {
	step, err := q.quizService.Advance(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, step, "Moved to the next step")
}

// BackQuiz godoc
// @Summary Go back to the previous question
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.StepResponse
// @Router /quiz/{sessionId}/back [post]
func (q *QuizController) BackQuiz(c *gin.Context) {
	step, err := q.quizService.Back(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, step, "Moved to the previous question")
}

// RetakeQuiz godoc
// @Summary Retake the quiz
// @Description Clears answers and the stored result; only valid from the result screen
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.StepResponse
// @Router /quiz/{sessionId}/retake [post]
func (q *QuizController) RetakeQuiz(c *gin.Context) {
	step, err := q.quizService.Retake(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, step, "Quiz reset")
}

// GetStep godoc
// @Summary Get the current step
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.StepResponse
// @Router /quiz/{sessionId}/step [get]
func (q *QuizController) GetStep(c *gin.Context) {
	step, err := q.quizService.CurrentStep(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, step, "Current step fetched")
}

// GetResult godoc
// @Summary Get the finalized result with recommendations
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.ResultResponse
// @Failure 409 {object} utils.APIResponse
// @Router /quiz/{sessionId}/result [get]
func (q *QuizController) GetResult(c *gin.Context) {
	result, err := q.quizService.Result(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Result fetched")
}

// SaveResult godoc
// @Summary Save the finalized result for the authenticated user
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /quiz/{sessionId}/save [post]
func (q *QuizController) SaveResult(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User identity missing")
		return
	}

	if err := q.quizService.SaveResult(c.Request.Context(), c.Param("sessionId"), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Analysis saved")
}

// CloseSession godoc
// @Summary Discard a quiz session
// @Description Drops the in-progress answers; nothing is persisted
// @Tags Quiz
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/{sessionId} [delete]
func (q *QuizController) CloseSession(c *gin.Context) {
	q.quizService.CloseSession(c.Request.Context(), c.Param("sessionId"))
	utils.RespondSuccess(c, nil, "Session discarded")
}
