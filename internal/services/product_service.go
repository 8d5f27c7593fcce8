package services

import (
	"context"

	"dermia/internal/models/response_models"
	"dermia/internal/repositories"
	"dermia/pkg/utils"
)

type ProductServiceInterface interface {
	ListBySkinType(ctx context.Context, skinType string, limit int) ([]response_models.ProductResponse, error)
}

type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductServiceInterface {
	return &ProductService{
		productRepo: productRepo,
	}
}

func (p *ProductService) ListBySkinType(ctx context.Context, skinType string, limit int) ([]response_models.ProductResponse, error) {
	if skinType == "" || limit < 1 {
		return nil, utils.ErrInvalidInput
	}

	products, err := p.productRepo.ListBySkinType(ctx, skinType, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, response_models.ProductResponse{
			ID:     product.ID.String(),
			Name:   product.Name,
			Brand:  product.Brand,
			Price:  product.Price,
			Images: product.Images,
		})
	}
	return out, nil
}
