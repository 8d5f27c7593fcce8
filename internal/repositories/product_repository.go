package repositories

import (
	"context"

	"gorm.io/gorm"

	"dermia/internal/models/db_models"
)

type ProductRepository interface {
	ListBySkinType(ctx context.Context, skinType string, limit int) ([]db_models.Product, error)
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) ListBySkinType(ctx context.Context, skinType string, limit int) ([]db_models.Product, error) {
	var products []db_models.Product
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("? = ANY(skin_types)", skinType).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
