package handler

import (
	"net/http"

	"panelapi/internal/middleware"
	"panelapi/internal/repository"
	"panelapi/internal/service"
	"panelapi/pkg/pagination"
	"panelapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/audit-logs", middleware.RequirePermission("audit.read"), h.ListLogs)
}

// ListLogs handles GET /api/audit-logs with action/user filters
func (h *AuditHandler) ListLogs(c *gin.Context) {
	params := pagination.Parse(c)

	filter := repository.AuditFilter{
		Action: c.Query("action"),
		UserID: c.Query("user_id"),
		Page:   params.Page,
		Limit:  params.Limit,
	}

	logs, total, err := h.auditService.ListLogs(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch audit logs"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessList(http.StatusOK, logs, total, params.Page, params.Limit))
}
