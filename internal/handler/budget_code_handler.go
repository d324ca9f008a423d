package handler

import (
	"net/http"

	"panelapi/internal/middleware"
	"panelapi/internal/service"
	"panelapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type BudgetCodeHandler struct {
	budgetService service.BudgetCodeService
}

func NewBudgetCodeHandler(budgetService service.BudgetCodeService) *BudgetCodeHandler {
	return &BudgetCodeHandler{budgetService: budgetService}
}

func (h *BudgetCodeHandler) RegisterRoutes(router *gin.RouterGroup) {
	codes := router.Group("/api/budget-codes")
	{
		codes.GET("", middleware.RequirePermission("collections.read"), h.ListBudgetCodes)
		codes.POST("", middleware.RequirePermission("collections.write"), h.CreateBudgetCode)
		codes.PUT("/:id", middleware.RequirePermission("collections.write"), h.UpdateBudgetCode)
		codes.DELETE("/:id", middleware.RequirePermission("collections.write"), h.DeleteBudgetCode)
	}
}

// ListBudgetCodes handles GET /api/budget-codes?scope=office
// @Summary      List budget codes
// @Description  Retrieves budget codes, optionally filtered by scope
// @Tags         budget-codes
// @Produce      json
// @Security     BearerAuth
// @Param        scope  query     string  false  "Budget scope filter"
// @Success      200    {object}  response.Response{data=[]service.BudgetCodeResponse}
// @Router       /api/budget-codes [get]
func (h *BudgetCodeHandler) ListBudgetCodes(c *gin.Context) {
	codes, err := h.budgetService.ListBudgetCodes(c.Request.Context(), c.Query("scope"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch budget codes"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, codes))
}

func (h *BudgetCodeHandler) CreateBudgetCode(c *gin.Context) {
	var req service.CreateBudgetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	code, err := h.budgetService.CreateBudgetCode(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, code))
}

func (h *BudgetCodeHandler) UpdateBudgetCode(c *gin.Context) {
	var req service.UpdateBudgetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	code, err := h.budgetService.UpdateBudgetCode(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, code))
}

func (h *BudgetCodeHandler) DeleteBudgetCode(c *gin.Context) {
	if err := h.budgetService.DeleteBudgetCode(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Budget code deleted successfully"))
}
