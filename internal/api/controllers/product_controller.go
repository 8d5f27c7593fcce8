package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dermia/internal/services"
	"dermia/pkg/utils"
)

type ProductController struct {
	productService services.ProductServiceInterface
}

func NewProductController(productService services.ProductServiceInterface) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// GetProductsBySkinType godoc
// @Summary List products matching a skin-type label
// @Description Fetch a bounded list of catalog items for a classified skin type
// @Tags Products
// @Produce json
// @Param skinType path string true "Skin type label, e.g. Piel Mixta"
// @Param limit query int false "Max items" default(8) minimum(1) maximum(50)
// @Success 200 {array} response_models.ProductResponse
// @Router /products/by-skin-type/{skinType} [get]
func (p *ProductController) GetProductsBySkinType(c *gin.Context) {
	skinType := c.Param("skinType")
	if skinType == "" {
		utils.RespondError(c, http.StatusBadRequest, "Skin type is required")
		return
	}

	limitStr := c.DefaultQuery("limit", "8")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 50 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-50)")
		return
	}

	products, err := p.productService.ListBySkinType(c.Request.Context(), skinType, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, products, "Products fetched successfully")
}
