package handler

import (
	"net/http"

	"panelapi/internal/middleware"
	"panelapi/internal/service"
	"panelapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type CurrencyHandler struct {
	currencyService service.CurrencyService
}

func NewCurrencyHandler(currencyService service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

func (h *CurrencyHandler) RegisterRoutes(router *gin.RouterGroup) {
	currencies := router.Group("/api/currencies")
	{
		currencies.GET("", middleware.RequirePermission("collections.read"), h.ListCurrencies)
		currencies.POST("", middleware.RequirePermission("collections.write"), h.CreateCurrency)
		currencies.PUT("/:id", middleware.RequirePermission("collections.write"), h.UpdateCurrency)
		currencies.DELETE("/:id", middleware.RequirePermission("collections.write"), h.DeleteCurrency)
	}
}

// ListCurrencies handles GET /api/currencies
// @Summary      List currencies
// @Tags         currencies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.CurrencyResponse}
// @Router       /api/currencies [get]
func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch currencies"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, currencies))
}

func (h *CurrencyHandler) CreateCurrency(c *gin.Context) {
	var req service.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, currency))
}

func (h *CurrencyHandler) UpdateCurrency(c *gin.Context) {
	var req service.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, currency))
}

func (h *CurrencyHandler) DeleteCurrency(c *gin.Context) {
	if err := h.currencyService.DeleteCurrency(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Currency deleted successfully"))
}
