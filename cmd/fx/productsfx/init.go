package productsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dermia/internal/repositories"
	"dermia/internal/services"
)

var Module = fx.Provide(provideProductRepo, provideProductService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideProductService(productRepo repositories.ProductRepository) services.ProductServiceInterface {
	return services.NewProductService(productRepo)
}
