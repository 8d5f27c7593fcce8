package analysisfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dermia/internal/repositories"
	"dermia/internal/services"
)

var Module = fx.Provide(provideAnalysisRepo, provideAnalysisService)

func provideAnalysisRepo(db *gorm.DB) repositories.AnalysisRepository {
	return repositories.NewAnalysisRepository(db)
}

func provideAnalysisService(analysisRepo repositories.AnalysisRepository) services.AnalysisServiceInterface {
	return services.NewAnalysisService(analysisRepo)
}
