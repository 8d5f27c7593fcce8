package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dermia/internal/services"
	"dermia/pkg/utils"
)

type AnalysisController struct {
	analysisService services.AnalysisServiceInterface
}

func NewAnalysisController(analysisService services.AnalysisServiceInterface) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
	}
}

// ListAnalyses godoc
// @Summary List the authenticated user's saved analyses
// @Description Most recent first
// @Tags Analyses
// @Produce json
// @Param limit query int false "Max items" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.AnalysisResponse
// @Security BearerAuth
// @Router /analyses [get]
func (a *AnalysisController) ListAnalyses(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User identity missing")
		return
	}

	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	analyses, err := a.analysisService.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, analyses, "Analyses fetched successfully")
}
