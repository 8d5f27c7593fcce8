package services

import (
	"context"

	"dermia/internal/models/response_models"
	"dermia/internal/repositories"
	"dermia/pkg/utils"
)

type AnalysisServiceInterface interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]response_models.AnalysisResponse, error)
}

type AnalysisService struct {
	analysisRepo repositories.AnalysisRepository
}

func NewAnalysisService(analysisRepo repositories.AnalysisRepository) AnalysisServiceInterface {
	return &AnalysisService{
		analysisRepo: analysisRepo,
	}
}

func (a *AnalysisService) ListByUser(ctx context.Context, userID string, limit int) ([]response_models.AnalysisResponse, error) {
	if userID == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	analyses, err := a.analysisRepo.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AnalysisResponse, 0, len(analyses))
	for _, analysis := range analyses {
		out = append(out, response_models.AnalysisResponse{
			ID:                analysis.ID.String(),
			SkinType:          analysis.SkinType,
			IsSensible:        analysis.IsSensible,
			Concerns:          analysis.Concerns,
			PreferredTexture:  analysis.PreferredTexture,
			AgeRange:          analysis.AgeRange,
			RoutineComplexity: analysis.RoutineComplexity,
			SavedAt:           analysis.CreatedAt,
		})
	}
	return out, nil
}
