package handler

import (
	"net/http"
	"time"

	"panelapi/internal/middleware"
	"panelapi/internal/service"
	"panelapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/reports/budget", middleware.RequirePermission("reports.read"), h.BudgetReport)
}

// BudgetReport handles GET /api/reports/budget?from=2025-01-01&to=2025-12-31
// @Summary      Budget report
// @Description  Aggregates payment request totals per scope and status over a date range
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Start date (YYYY-MM-DD, default 30 days ago)"
// @Param        to    query     string  false  "End date (YYYY-MM-DD, default today)"
// @Success      200   {object}  response.Response{data=service.BudgetReportResponse}
// @Failure      400   {object}  response.Response
// @Router       /api/reports/budget [get]
func (h *ReportHandler) BudgetReport(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid 'from' date, expected YYYY-MM-DD"))
			return
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid 'to' date, expected YYYY-MM-DD"))
			return
		}
		// Include the whole end day
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	report, err := h.reportService.BudgetReport(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to build budget report"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}
