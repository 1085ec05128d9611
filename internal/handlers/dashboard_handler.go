package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kexpay/internal/errors"
	"kexpay/internal/services"
)

// DashboardHandler serves the overview page and reports.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	reportService    services.ReportServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer, reportService services.ReportServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, reportService: reportService}
}

// GetMetrics returns the headline metric cards.
// @Summary     Dashboard metrics
// @Description Balance, income, expenses and savings rate cards
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.DashboardMetrics "Metric cards"
// @Router      /dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	result, err := h.dashboardService.GetMetrics()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetInsights returns the financial health score.
// @Summary     Dashboard insights
// @Description Health score and supporting figures; empty when there are no transactions
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.DashboardInsights "Insights"
// @Router      /dashboard/insights [get]
func (h *DashboardHandler) GetInsights(c *gin.Context) {
	result, err := h.dashboardService.GetInsights()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetChart returns the running balance series.
// @Summary     Balance chart
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.ChartData "Series"
// @Router      /dashboard/chart [get]
func (h *DashboardHandler) GetChart(c *gin.Context) {
	result, err := h.dashboardService.GetChart()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ReportQuery selects the report period.
type ReportQuery struct {
	Period string `form:"period" binding:"omitempty,oneof=monthly quarterly"`
}

// GetReport returns income and expense by period with breakdowns.
// @Summary     Reports
// @Tags        reports
// @Produce     json
// @Param       period query string false "monthly (default) or quarterly"
// @Success     200 {object} services.Report "Report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports [get]
func (h *DashboardHandler) GetReport(c *gin.Context) {
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	report, err := h.reportService.GetReport(q.Period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
