package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelai/internal/services"
	"travelai/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

func (d *DashboardController) ListReviewsHandler(c *gin.Context) {
	utils.RespondSuccess(c, d.dashboardService.ListReviews(c.Request.Context()), "Reviews fetched")
}

func (d *DashboardController) GetSummaryHandler(c *gin.Context) {
	topN := 20
	if v := c.Query("top_terms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "top_terms must be a positive integer")
			return
		}
		topN = n
	}

	utils.RespondSuccess(c, d.dashboardService.BuildSummary(c.Request.Context(), topN), "Review summary built")
}
