package handler

import (
	"net/http"

	"panelapi/internal/middleware"
	"panelapi/internal/service"
	"panelapi/pkg/pagination"
	"panelapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type DailyReportHandler struct {
	reportService service.DailyReportService
}

func NewDailyReportHandler(reportService service.DailyReportService) *DailyReportHandler {
	return &DailyReportHandler{reportService: reportService}
}

func (h *DailyReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/daily-reports")
	{
		reports.GET("", middleware.RequirePermission("reports.read"), h.ListReports)
		reports.GET("/:id", middleware.RequirePermission("reports.read"), h.GetReport)
		reports.POST("", middleware.RequirePermission("reports.write"), h.CreateReport)
		reports.PUT("/:id", middleware.RequirePermission("reports.write"), h.UpdateReport)
		reports.DELETE("/:id", middleware.RequirePermission("reports.write"), h.DeleteReport)
	}
}

// ListReports handles GET /api/daily-reports?project_id=...
func (h *DailyReportHandler) ListReports(c *gin.Context) {
	params := pagination.Parse(c)

	reports, total, err := h.reportService.ListReports(c.Request.Context(), c.Query("project_id"), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch daily reports"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessList(http.StatusOK, reports, total, params.Page, params.Limit))
}

func (h *DailyReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

// CreateReport handles POST /api/daily-reports
// @Summary      Create daily report
// @Description  Creates a daily report; the report date is derived from the first attachment's filename when present
// @Tags         daily-reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateDailyReportRequest  true  "Daily Report Payload"
// @Success      201      {object}  response.Response{data=service.DailyReportResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/daily-reports [post]
func (h *DailyReportHandler) CreateReport(c *gin.Context) {
	var req service.CreateDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), actorID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, report))
}

func (h *DailyReportHandler) UpdateReport(c *gin.Context) {
	var req service.UpdateDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	report, err := h.reportService.UpdateReport(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

func (h *DailyReportHandler) DeleteReport(c *gin.Context) {
	if err := h.reportService.DeleteReport(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Daily report deleted successfully"))
}
