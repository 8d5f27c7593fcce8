package quizfx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"dermia/internal/quiz"
	"dermia/internal/repositories"
	"dermia/internal/services"
	mem "dermia/pkg/memcache"
)

const (
	defaultSessionTTL   = 30 * time.Minute
	defaultAdvanceDelay = quiz.DefaultAutoAdvanceDelay
)

var Module = fx.Provide(provideBank, provideSessionStore, provideQuizService)

func provideBank() *quiz.Bank {
	return quiz.DefaultBank()
}

func provideSessionStore() mem.SessionStore {
	return mem.NewQuizSessions()
}

func provideQuizService(
	bank *quiz.Bank,
	sessions mem.SessionStore,
	productService services.ProductServiceInterface,
	analysisRepo repositories.AnalysisRepository,
) services.QuizServiceInterface {
	return services.NewQuizService(bank, sessions, productService, analysisRepo, sessionTTL(), advanceDelay())
}

func sessionTTL() time.Duration {
	raw := os.Getenv("QUIZ_SESSION_TTL")
	if raw == "" {
		return defaultSessionTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("Invalid QUIZ_SESSION_TTL %q, using default", raw)
		return defaultSessionTTL
	}
	return ttl
}

func advanceDelay() time.Duration {
	raw := os.Getenv("QUIZ_AUTO_ADVANCE_MS")
	if raw == "" {
		return defaultAdvanceDelay
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("Invalid QUIZ_AUTO_ADVANCE_MS %q, using default", raw)
		return defaultAdvanceDelay
	}
	return time.Duration(ms) * time.Millisecond
}
