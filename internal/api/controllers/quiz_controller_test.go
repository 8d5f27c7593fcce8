package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dermia/internal/models/db_models"
	"dermia/internal/models/response_models"
	"dermia/internal/quiz"
	"dermia/internal/services"
	mem "dermia/pkg/memcache"
	"dermia/pkg/middleware"
	"dermia/pkg/utils"
)

type fakeProducts struct{}

func (fakeProducts) ListBySkinType(ctx context.Context, skinType string, limit int) ([]response_models.ProductResponse, error) {
	return []response_models.ProductResponse{{ID: "p1", Name: "Gel Limpiador", Brand: "Dermia"}}, nil
}

type fakeAnalyses struct{ saved []db_models.SkinAnalysis }

func (f *fakeAnalyses) Save(ctx context.Context, analysis db_models.SkinAnalysis) error {
	f.saved = append(f.saved, analysis)
	return nil
}

func (f *fakeAnalyses) ListByUserID(ctx context.Context, userID string, limit int) ([]db_models.SkinAnalysis, error) {
	var out []db_models.SkinAnalysis
	for _, a := range f.saved {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestRouter() (*gin.Engine, *fakeAnalyses) {
	gin.SetMode(gin.TestMode)
	analyses := &fakeAnalyses{}
	svc := services.NewQuizService(
		quiz.DefaultBank(),
		mem.NewQuizSessions(),
		fakeProducts{},
		analyses,
		time.Minute,
		time.Hour,
	)
	controller := NewQuizController(svc)
	analysisController := NewAnalysisController(services.NewAnalysisService(analyses))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	group := r.Group("/quiz")
	group.POST("/start", controller.StartQuiz)
	group.POST("/:sessionId/begin", controller.BeginQuiz)
	group.POST("/:sessionId/answer", controller.AnswerQuestion)
	group.POST("/:sessionId/advance", controller.AdvanceQuiz)
	group.POST("/:sessionId/back", controller.BackQuiz)
	group.POST("/:sessionId/retake", controller.RetakeQuiz)
	group.GET("/:sessionId/step", controller.GetStep)
	group.GET("/:sessionId/result", controller.GetResult)
	group.DELETE("/:sessionId", controller.CloseSession)
	group.POST("/:sessionId/save", middleware.JWTAuthMiddleware(), controller.SaveResult)
	r.GET("/analyses", middleware.JWTAuthMiddleware(), analysisController.ListAnalyses)
	return r, analyses
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return doAuth(t, r, method, path, body, "")
}

func doAuth(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func completeQuiz(t *testing.T, r *gin.Engine, sessionID string) {
	t.Helper()
	single := map[int]string{1: "1c", 2: "2c", 3: "3c", 4: "4c", 5: "5c", 6: "6c", 8: "8a", 9: "9b", 10: "10b"}
	for i := 1; i <= 10; i++ {
		var body map[string]interface{}
		if i == 7 {
			body = map[string]interface{}{"question_id": 7, "option_ids": []string{"7d"}}
		} else {
			body = map[string]interface{}{"question_id": i, "option_id": single[i]}
		}
		rec, _ := do(t, r, http.MethodPost, fmt.Sprintf("/quiz/%s/answer", sessionID), body)
		require.Equal(t, http.StatusOK, rec.Code, "answer %d", i)
		rec, _ = do(t, r, http.MethodPost, fmt.Sprintf("/quiz/%s/advance", sessionID), nil)
		require.Equal(t, http.StatusOK, rec.Code, "advance %d", i)
	}
}

func startSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	rec, env := do(t, r, http.MethodPost, "/quiz/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var start response_models.StartResponse
	require.NoError(t, json.Unmarshal(env.Data, &start))
	require.NotEmpty(t, start.SessionID)
	require.Equal(t, "intro", start.Step.State)
	return start.SessionID
}

func TestQuizController_StartAndStep(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)

	rec, env := do(t, r, http.MethodPost, "/quiz/"+sessionID+"/begin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, env.TraceID)

	var step response_models.StepResponse
	require.NoError(t, json.Unmarshal(env.Data, &step))
	assert.Equal(t, "question", step.State)
	assert.Equal(t, 1, step.Step)
	assert.Equal(t, 10, step.TotalSteps)
	require.NotNil(t, step.Question)
	assert.Equal(t, "single", step.Question.Type)
	assert.False(t, step.CanAdvance)
	assert.False(t, step.CanBack)
}

func TestQuizController_UnknownSessionIs404(t *testing.T) {
	r, _ := newTestRouter()
	rec, env := do(t, r, http.MethodGet, "/quiz/nope/step", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestQuizController_AnswerValidation(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)
	do(t, r, http.MethodPost, "/quiz/"+sessionID+"/begin", nil)

	rec, _ := do(t, r, http.MethodPost, "/quiz/"+sessionID+"/answer", map[string]interface{}{"option_id": "1a"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuizController_AdvanceWithoutAnswerConflicts(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)
	do(t, r, http.MethodPost, "/quiz/"+sessionID+"/begin", nil)

	rec, _ := do(t, r, http.MethodPost, "/quiz/"+sessionID+"/advance", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestQuizController_FullFlowToResult(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)
	do(t, r, http.MethodPost, "/quiz/"+sessionID+"/begin", nil)

	// Result before completion is a conflict.
	rec, _ := do(t, r, http.MethodGet, "/quiz/"+sessionID+"/result", nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	completeQuiz(t, r, sessionID)

	rec, env := do(t, r, http.MethodGet, "/quiz/"+sessionID+"/result", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result response_models.ResultResponse
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "Piel Mixta", result.SkinType)
	assert.Equal(t, []string{"poros"}, result.Concerns)
	assert.Len(t, result.Recommendations, 1)

	// Retake resets; the old result is gone.
	rec, _ = do(t, r, http.MethodPost, "/quiz/"+sessionID+"/retake", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, r, http.MethodGet, "/quiz/"+sessionID+"/result", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestQuizController_SaveRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "controller-test-secret")
	r, _ := newTestRouter()
	sessionID := startSession(t, r)
	do(t, r, http.MethodPost, "/quiz/"+sessionID+"/begin", nil)
	completeQuiz(t, r, sessionID)

	rec, env := do(t, r, http.MethodPost, "/quiz/"+sessionID+"/save", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", env.Status)

	rec, _ = doAuth(t, r, http.MethodPost, "/quiz/"+sessionID+"/save", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// The secret is only set here, after package init, mirroring how main loads
// .env at startup. Minting and validating must both see it.
func TestQuizController_SaveAndListAnalyses(t *testing.T) {
	t.Setenv("JWT_SECRET", "controller-test-secret")
	r, analyses := newTestRouter()
	sessionID := startSession(t, r)
	do(t, r, http.MethodPost, "/quiz/"+sessionID+"/begin", nil)
	completeQuiz(t, r, sessionID)

	token, err := utils.CreateToken("user-1")
	require.NoError(t, err)

	rec, _ := doAuth(t, r, http.MethodPost, "/quiz/"+sessionID+"/save", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, analyses.saved, 1)
	assert.Equal(t, "user-1", analyses.saved[0].UserID)
	assert.Equal(t, "Piel Mixta", analyses.saved[0].SkinType)

	rec, env := doAuth(t, r, http.MethodGet, "/analyses", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var history []response_models.AnalysisResponse
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history, 1)
	assert.Equal(t, "Piel Mixta", history[0].SkinType)

	// Another user's token sees an empty history.
	otherToken, err := utils.CreateToken("user-2")
	require.NoError(t, err)
	rec, env = doAuth(t, r, http.MethodGet, "/analyses", nil, otherToken)
	require.Equal(t, http.StatusOK, rec.Code)
	history = nil
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Empty(t, history)
}

func TestQuizController_CloseSession(t *testing.T) {
	r, _ := newTestRouter()
	sessionID := startSession(t, r)

	rec, _ := do(t, r, http.MethodDelete, "/quiz/"+sessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, r, http.MethodGet, "/quiz/"+sessionID+"/step", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
