package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dermia/cmd/fx/analysisfx"
	"dermia/cmd/fx/dbfx"
	"dermia/cmd/fx/productsfx"
	"dermia/cmd/fx/quizfx"
	"dermia/internal/api/controllers"
	mem "dermia/pkg/memcache"
	"dermia/pkg/middleware"
)

const sessionSweepInterval = 5 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		productsfx.Module,
		analysisfx.Module,
		quizfx.Module,

		fx.Provide(controllers.NewQuizController),
		fx.Provide(controllers.NewProductController),
		fx.Provide(controllers.NewAnalysisController),
		fx.Provide(ProvideRouter),

		fx.Invoke(StartSessionSweeper),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

// StartSessionSweeper drops expired quiz sessions in the background so
// abandoned wizards do not pile up.
func StartSessionSweeper(lc fx.Lifecycle, sessions mem.SessionStore) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sessionSweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if removed := sessions.Sweep(); removed > 0 {
							log.Printf("Swept %d expired quiz sessions", removed)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}

func ProvideRouter(
	quizController *controllers.QuizController,
	productController *controllers.ProductController,
	analysisController *controllers.AnalysisController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, quizController, productController, analysisController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	quizController *controllers.QuizController,
	productController *controllers.ProductController,
	analysisController *controllers.AnalysisController) {

	quizGroup := r.Group("/quiz")
	quizGroup.POST("/start", quizController.StartQuiz)
	quizGroup.POST("/:sessionId/begin", quizController.BeginQuiz)
	quizGroup.POST("/:sessionId/answer", quizController.AnswerQuestion)
	quizGroup.POST("/:sessionId/advance", quizController.AdvanceQuiz)
	quizGroup.POST("/:sessionId/back", quizController.BackQuiz)
	quizGroup.POST("/:sessionId/retake", quizController.RetakeQuiz)
	quizGroup.GET("/:sessionId/step", quizController.GetStep)
	quizGroup.GET("/:sessionId/result", quizController.GetResult)
	quizGroup.DELETE("/:sessionId", quizController.CloseSession)
	quizGroup.POST("/:sessionId/save", middleware.JWTAuthMiddleware(), quizController.SaveResult)

	productsGroup := r.Group("/products")
	productsGroup.GET("/by-skin-type/:skinType", productController.GetProductsBySkinType)

	analysesGroup := r.Group("/analyses")
	analysesGroup.Use(middleware.JWTAuthMiddleware())
	analysesGroup.GET("", analysisController.ListAnalyses)
}
