package repositories

import (
	"context"

	"gorm.io/gorm"

	"dermia/internal/models/db_models"
)

type AnalysisRepository interface {
	Save(ctx context.Context, analysis db_models.SkinAnalysis) error
	ListByUserID(ctx context.Context, userID string, limit int) ([]db_models.SkinAnalysis, error)
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

type analysisRepository struct {
	db *gorm.DB
}

func (r *analysisRepository) Save(ctx context.Context, analysis db_models.SkinAnalysis) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(&analysis).Error
	})
}

func (r *analysisRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]db_models.SkinAnalysis, error) {
	var analyses []db_models.SkinAnalysis
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}
