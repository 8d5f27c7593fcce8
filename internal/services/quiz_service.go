package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"dermia/internal/models/db_models"
	"dermia/internal/models/request_models"
	"dermia/internal/models/response_models"
	"dermia/internal/quiz"
	"dermia/internal/repositories"
	mem "dermia/pkg/memcache"
	"dermia/pkg/utils"
)

const recommendationLimit = 8

type QuizServiceInterface interface {
	StartSession(ctx context.Context) (response_models.StartResponse, error)
	Begin(ctx context.Context, sessionID string) (response_models.StepResponse, error)
	Answer(ctx context.Context, sessionID string, req request_models.AnswerRequest) (response_models.StepResponse, error)
	Advance(ctx context.Context, sessionID string) (response_models.StepResponse, error)
	Back(ctx context.Context, sessionID string) (response_models.StepResponse, error)
	Retake(ctx context.Context, sessionID string) (response_models.StepResponse, error)
	CurrentStep(ctx context.Context, sessionID string) (response_models.StepResponse, error)
	Result(ctx context.Context, sessionID string) (*response_models.ResultResponse, error)
	SaveResult(ctx context.Context, sessionID string, userID string) error
	CloseSession(ctx context.Context, sessionID string)
}

type QuizService struct {
	bank           *quiz.Bank
	sessions       mem.SessionStore
	productService ProductServiceInterface
	analysisRepo   repositories.AnalysisRepository
	sessionTTL     time.Duration
	advanceDelay   time.Duration
}

func NewQuizService(
	bank *quiz.Bank,
	sessions mem.SessionStore,
	productService ProductServiceInterface,
	analysisRepo repositories.AnalysisRepository,
	sessionTTL time.Duration,
	advanceDelay time.Duration,
) QuizServiceInterface {
	return &QuizService{
		bank:           bank,
		sessions:       sessions,
		productService: productService,
		analysisRepo:   analysisRepo,
		sessionTTL:     sessionTTL,
		advanceDelay:   advanceDelay,
	}
}

func (q *QuizService) StartSession(ctx context.Context) (response_models.StartResponse, error) {
	wizard := quiz.NewWizard(q.bank, quiz.WithAutoAdvanceDelay(q.advanceDelay))
	sessionID := uuid.New().String()
	q.sessions.Put(sessionID, wizard, q.sessionTTL)

	return response_models.StartResponse{
		SessionID: sessionID,
		Step:      buildStepResponse(wizard.Snapshot()),
	}, nil
}

func (q *QuizService) Begin(ctx context.Context, sessionID string) (response_models.StepResponse, error) {
	wizard := q.sessions.Get(sessionID)
	if wizard == nil {
		return response_models.StepResponse{}, utils.ErrSessionNotFound
	}
	wizard.Begin()
	return buildStepResponse(wizard.Snapshot()), nil
}

func (q *QuizService) Answer(ctx context.Context, sessionID string, req request_models.AnswerRequest) (response_models.StepResponse, error) {
	if req.QuestionID < 1 {
		return response_models.StepResponse{}, utils.ErrInvalidInput
	}
	wizard := q.sessions.Get(sessionID)
	if wizard == nil {
		return response_models.StepResponse{}, utils.ErrSessionNotFound
	}

	sel := quiz.SingleSelection(req.OptionID)
	if question := q.bank.Question(req.QuestionID); question != nil && question.Type == quiz.QuestionTypeMulti {
		sel = quiz.MultiSelection(req.OptionIDs...)
	}
	wizard.Answer(req.QuestionID, sel)
	return buildStepResponse(wizard.Snapshot()), nil
}

func (q *QuizService) Advance(ctx context.Context, sessionID string) (response_models.StepResponse, error) {
	wizard := q.sessions.Get(sessionID)
	if wizard == nil {
		return response_models.StepResponse{}, utils.ErrSessionNotFound
	}
	if !wizard.Advance() {
		return response_models.StepResponse{}, utils.ErrTransitionRejected
	}
	return buildStepResponse(wizard.Snapshot()), nil
}

func (q *QuizService) Back(ctx context.Context, sessionID string) (response_models.StepResponse, error) {
	wizard := q.sessions.Get(sessionID)
	if wizard == nil {
		return response_models.StepResponse{}, utils.ErrSessionNotFound
	}
	if !wizard.Back() {
		return response_models.StepResponse{}, utils.ErrTransitionRejected
	}
	return buildStepResponse(wizard.Snapshot()), nil
}

func (q *QuizService) Retake(ctx context.Context, sessionID string) (response_models.StepResponse, error) {
	wizard := q.sessions.Get(sessionID)
	if wizard == nil {
		return response_models.StepResponse{}, utils.ErrSessionNotFound
	}
	if !wizard.Retake() {
		return response_models.StepResponse{}, utils.ErrTransitionRejected
	}
	return buildStepResponse(wizard.Snapshot()), nil
}

func (q *QuizService) CurrentStep(ctx context.Context, sessionID string) (response_models.StepResponse, error) {
	wizard := q.sessions.Get(sessionID)
	if wizard == nil {
		return response_models.StepResponse{}, utils.ErrSessionNotFound
	}
	return buildStepResponse(wizard.Snapshot()), nil
}

// Result renders the frozen diagnosis plus recommendations for the classified
// skin type. A failed product lookup degrades to an empty list; it never
// turns into a classification error.
func (q *QuizService) Result(ctx context.Context, sessionID string) (*response_models.ResultResponse, error) {
	wizard := q.sessions.Get(sessionID)
	if wizard == nil {
		return nil, utils.ErrSessionNotFound
	}
	snap := wizard.Snapshot()
	if snap.State != quiz.StateResult || snap.Result == nil {
		return nil, utils.ErrQuizNotFinished
	}
	result := *snap.Result

	recommendations, err := q.productService.ListBySkinType(ctx, result.SkinType, recommendationLimit)
	if err != nil {
		log.Printf("Product lookup for %q failed: %v", result.SkinType, err)
		recommendations = []response_models.ProductResponse{}
	}

	content := quiz.ContentFor(result)
	advisory := ""
	if result.IsSensible {
		advisory = quiz.SensitiveAdvisory
	}

	return &response_models.ResultResponse{
		SkinType:          result.SkinType,
		IsSensible:        result.IsSensible,
		Concerns:          result.Concerns,
		PreferredTexture:  result.PreferredTexture,
		AgeRange:          result.AgeRange,
		RoutineComplexity: result.RoutineComplexity,
		Content: response_models.SkinTypeContent{
			Title:        content.Title,
			Description:  content.Description,
			Tip:          content.Tip,
			Advisory:     advisory,
			RoutineSteps: content.RoutineSteps,
		},
		Recommendations: recommendations,
	}, nil
}

// SaveResult hands the frozen result to the persistence collaborator. Failure
// only means "not saved"; the diagnosis already shown is unaffected.
func (q *QuizService) SaveResult(ctx context.Context, sessionID string, userID string) error {
	wizard := q.sessions.Get(sessionID)
	if wizard == nil {
		return utils.ErrSessionNotFound
	}
	snap := wizard.Snapshot()
	if snap.State != quiz.StateResult || snap.Result == nil {
		return utils.ErrQuizNotFinished
	}
	result := snap.Result

	analysis := db_models.SkinAnalysis{
		UserID:            userID,
		SkinType:          result.SkinType,
		IsSensible:        result.IsSensible,
		Concerns:          append([]string{}, result.Concerns...),
		PreferredTexture:  result.PreferredTexture,
		AgeRange:          result.AgeRange,
		RoutineComplexity: result.RoutineComplexity,
	}
	if err := q.analysisRepo.Save(ctx, analysis); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (q *QuizService) CloseSession(ctx context.Context, sessionID string) {
	q.sessions.Delete(sessionID)
}

func buildStepResponse(snap quiz.Snapshot) response_models.StepResponse {
	resp := response_models.StepResponse{
		State:      string(snap.State),
		Step:       snap.Step,
		TotalSteps: snap.TotalSteps,
		CanAdvance: snap.CanAdvance,
		CanBack:    snap.CanBack,
	}
	if snap.Question != nil {
		view := &response_models.QuestionView{
			ID:       snap.Question.ID,
			Question: snap.Question.Question,
			Type:     string(snap.Question.Type),
			Options:  make([]response_models.OptionView, 0, len(snap.Question.Options)),
		}
		for _, opt := range snap.Question.Options {
			view.Options = append(view.Options, response_models.OptionView{ID: opt.ID, Label: opt.Label})
		}
		resp.Question = view
		resp.SelectedOption = snap.Selected.Option
		resp.SelectedOptions = snap.Selected.Options
	}
	return resp
}
